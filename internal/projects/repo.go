package projects

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("project not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Project is a saved room design. Room geometry and furniture placements
// are opaque JSON blobs owned by the client.
type Project struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	RoomData            json.RawMessage `json:"room_data"`
	PlacedFurnitureData json.RawMessage `json:"placed_furniture_data"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Summary is the list view of a project.
type Summary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields left nil keep their default (on create) or prior value (on update).
type ProjectFields struct {
	Name                *string
	RoomData            json.RawMessage
	PlacedFurnitureData json.RawMessage
}

func (r *Repo) Create(ctx context.Context, in ProjectFields) (int64, error) {
	const q = `
insert into projects (name, room_data, placed_furniture_data)
values (coalesce($1, 'New Project'), $2, $3)
returning id;
`
	var id int64
	err := r.db.QueryRow(ctx, q, in.Name, in.RoomData, in.PlacedFurnitureData).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*Project, error) {
	const q = `
select id, name, room_data, placed_furniture_data, created_at, updated_at
from projects
where id = $1;
`
	var p Project
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.RoomData, &p.PlacedFurnitureData,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update overwrites only the supplied fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, in ProjectFields) error {
	const q = `
update projects
set name                  = coalesce($2, name),
    room_data             = coalesce($3, room_data),
    placed_furniture_data = coalesce($4, placed_furniture_data),
    updated_at            = now()
where id = $1;
`
	ct, err := r.db.Exec(ctx, q, id, in.Name, in.RoomData, in.PlacedFurnitureData)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context) ([]Summary, error) {
	const q = `
select id, name, updated_at
from projects
order by updated_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0, 16)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
