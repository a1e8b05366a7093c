package furniture

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("furniture asset not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type CreateAssetInput struct {
	Name              string
	Description       string
	ModelFileName     string
	ThumbnailFileName string
	Category          string
	IsDefault         bool
	UploadedByUserID  *int64
}

// defaultAssets is the curated catalog inserted once on an empty install.
var defaultAssets = []CreateAssetInput{
	{
		Name:              "Standard Sofa",
		ModelFileName:     "default_sofa.gltf",
		ThumbnailFileName: "default_sofa.png",
		Category:          "Sofas",
		IsDefault:         true,
	},
	{
		Name:              "Standard Table",
		ModelFileName:     "default_table.gltf",
		ThumbnailFileName: "default_table.png",
		Category:          "Tables",
		IsDefault:         true,
	},
}

func (r *Repo) Create(ctx context.Context, in CreateAssetInput) (*Asset, error) {
	if in.ModelFileName == "" {
		return nil, fmt.Errorf("model file name required")
	}

	const q = `
insert into furniture_models
  (name, description, model_file_name, thumbnail_file_name, category, is_default, uploaded_by_user_id)
values ($1, nullif($2,''), $3, nullif($4,''), nullif($5,''), $6, $7)
returning id, created_at;
`
	a := Asset{
		Name:              in.Name,
		Description:       in.Description,
		ModelFileName:     in.ModelFileName,
		ThumbnailFileName: in.ThumbnailFileName,
		Category:          in.Category,
		IsDefault:         in.IsDefault,
		UploadedByUserID:  in.UploadedByUserID,
	}
	err := r.db.QueryRow(ctx, q,
		in.Name, in.Description, in.ModelFileName, in.ThumbnailFileName,
		in.Category, in.IsDefault, in.UploadedByUserID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const assetColumns = `
id, name, coalesce(description, ''), model_file_name,
coalesce(thumbnail_file_name, ''), coalesce(category, ''),
is_default, uploaded_by_user_id, created_at
`

func (r *Repo) ListDefaults(ctx context.Context) ([]Asset, error) {
	q := `select ` + assetColumns + ` from furniture_models where is_default order by id;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Asset, 0, 16)
	for rows.Next() {
		var a Asset
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.ModelFileName,
			&a.ThumbnailFileName, &a.Category,
			&a.IsDefault, &a.UploadedByUserID, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*Asset, error) {
	q := `select ` + assetColumns + ` from furniture_models where id = $1;`

	var a Asset
	err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.ModelFileName,
		&a.ThumbnailFileName, &a.Category,
		&a.IsDefault, &a.UploadedByUserID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repo) HasDefaults(ctx context.Context) (bool, error) {
	const q = `select exists (select 1 from furniture_models where is_default);`

	var exists bool
	if err := r.db.QueryRow(ctx, q).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Seeder is the subset of Repo the startup seeding uses.
type Seeder interface {
	Create(ctx context.Context, in CreateAssetInput) (*Asset, error)
	HasDefaults(ctx context.Context) (bool, error)
}

// SeedDefaults inserts the curated default catalog once. It is a no-op when
// any default asset already exists, so restarts do not duplicate entries.
func SeedDefaults(ctx context.Context, repo Seeder) error {
	has, err := repo.HasDefaults(ctx)
	if err != nil {
		return fmt.Errorf("check default assets: %w", err)
	}
	if has {
		return nil
	}

	for _, in := range defaultAssets {
		if _, err := repo.Create(ctx, in); err != nil {
			return fmt.Errorf("seed %q: %w", in.Name, err)
		}
	}
	return nil
}
