package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
create table if not exists projects (
    id                    bigserial primary key,
    user_id               bigint,
    name                  varchar(100) not null default 'New Project',
    room_data             jsonb,
    placed_furniture_data jsonb,
    created_at            timestamptz not null default now(),
    updated_at            timestamptz not null default now()
);

create table if not exists furniture_models (
    id                  bigserial primary key,
    name                varchar(100) not null,
    description         text,
    model_file_name     varchar(255) not null,
    thumbnail_file_name varchar(255),
    category            varchar(50),
    is_default          boolean not null default false,
    uploaded_by_user_id bigint,
    created_at          timestamptz not null default now()
);
`

// EnsureSchema creates the two application tables when they do not exist.
// There is no migration tooling; the DDL must stay additive-safe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
