package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AttachmentRepo provides attachment metadata persistence. File bytes live
// on disk; only the relative path is stored here.
type AttachmentRepo interface {
	Create(ctx context.Context, a dom.Attachment) (dom.Attachment, error)
	GetByID(ctx context.Context, id int64) (dom.Attachment, error)
	ListByCard(ctx context.Context, cardID int64) ([]dom.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

// PGAttachmentRepo implements AttachmentRepo with Postgres.
type PGAttachmentRepo struct {
	db *pgxpool.Pool
}

func NewPGAttachmentRepo(db *pgxpool.Pool) *PGAttachmentRepo {
	return &PGAttachmentRepo{db: db}
}

const attachmentColumns = `id, card_id, uploaded_by, file_name, file_path, size_bytes, created_at, updated_at`

func scanAttachment(row interface{ Scan(...any) error }) (dom.Attachment, error) {
	var a dom.Attachment
	err := row.Scan(&a.ID, &a.CardID, &a.UploadedByID, &a.FileName, &a.FilePath,
		&a.Size, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *PGAttachmentRepo) Create(ctx context.Context, a dom.Attachment) (dom.Attachment, error) {
	query := `
		INSERT INTO attachments (card_id, uploaded_by, file_name, file_path, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attachmentColumns
	return scanAttachment(r.db.QueryRow(ctx, query,
		a.CardID, a.UploadedByID, a.FileName, a.FilePath, a.Size))
}

func (r *PGAttachmentRepo) GetByID(ctx context.Context, id int64) (dom.Attachment, error) {
	return scanAttachment(r.db.QueryRow(ctx,
		`SELECT `+attachmentColumns+` FROM attachments WHERE id = $1`, id))
}

func (r *PGAttachmentRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Attachment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+attachmentColumns+` FROM attachments WHERE card_id = $1 ORDER BY created_at`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *PGAttachmentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	return err
}
