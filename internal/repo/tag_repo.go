package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TagRepo provides tag persistence. Tag names are unique system-wide;
// the unique index surfaces as a 23505 the service maps to a conflict.
type TagRepo interface {
	Create(ctx context.Context, t dom.Tag) (dom.Tag, error)
	GetByID(ctx context.Context, id int64) (dom.Tag, error)
	List(ctx context.Context) ([]dom.Tag, error)
	Update(ctx context.Context, id int64, patch dom.Tag) (dom.Tag, error)
	Delete(ctx context.Context, id int64) error
}

// PGTagRepo implements TagRepo with Postgres.
type PGTagRepo struct {
	db *pgxpool.Pool
}

func NewPGTagRepo(db *pgxpool.Pool) *PGTagRepo {
	return &PGTagRepo{db: db}
}

const tagColumns = `id, name, color, created_at, updated_at`

func scanTag(row interface{ Scan(...any) error }) (dom.Tag, error) {
	var t dom.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTagRepo) Create(ctx context.Context, t dom.Tag) (dom.Tag, error) {
	query := `
		INSERT INTO tags (name, color)
		VALUES ($1, $2)
		RETURNING ` + tagColumns
	return scanTag(r.db.QueryRow(ctx, query, t.Name, t.Color))
}

func (r *PGTagRepo) GetByID(ctx context.Context, id int64) (dom.Tag, error) {
	return scanTag(r.db.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = $1`, id))
}

func (r *PGTagRepo) List(ctx context.Context) ([]dom.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTagRepo) Update(ctx context.Context, id int64, patch dom.Tag) (dom.Tag, error) {
	query := `
		UPDATE tags SET name = $2, color = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tagColumns
	return scanTag(r.db.QueryRow(ctx, query, id, patch.Name, patch.Color))
}

func (r *PGTagRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	return err
}
