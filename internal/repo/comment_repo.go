package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepo provides comment persistence.
type CommentRepo interface {
	Create(ctx context.Context, c dom.Comment) (dom.Comment, error)
	GetByID(ctx context.Context, id int64) (dom.Comment, error)
	ListByCard(ctx context.Context, cardID int64) ([]dom.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// PGCommentRepo implements CommentRepo with Postgres.
type PGCommentRepo struct {
	db *pgxpool.Pool
}

func NewPGCommentRepo(db *pgxpool.Pool) *PGCommentRepo {
	return &PGCommentRepo{db: db}
}

const commentColumns = `id, card_id, user_id, comment_text, created_at`

func scanComment(row interface{ Scan(...any) error }) (dom.Comment, error) {
	var c dom.Comment
	err := row.Scan(&c.ID, &c.CardID, &c.UserID, &c.Text, &c.CreatedAt)
	return c, err
}

func (r *PGCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	query := `
		INSERT INTO comments (card_id, user_id, comment_text)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns
	return scanComment(r.db.QueryRow(ctx, query, c.CardID, c.UserID, c.Text))
}

func (r *PGCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	return scanComment(r.db.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
}

func (r *PGCommentRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Comment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE card_id = $1 ORDER BY created_at`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCommentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}
