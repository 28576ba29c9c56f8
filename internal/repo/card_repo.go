package repo

import (
	"context"
	"fmt"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
	"github.com/ClarkAshida/Kanban-API/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CardRepo provides card persistence including the card-tag relation.
type CardRepo interface {
	position.Occupancy
	Create(ctx context.Context, c dom.Card) (dom.Card, error)
	GetByID(ctx context.Context, id int64) (dom.Card, error)
	ListByColumn(ctx context.Context, columnID int64) ([]dom.Card, error)
	Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error)
	Delete(ctx context.Context, id int64) error

	AttachTag(ctx context.Context, cardID, tagID int64) error
	DetachTag(ctx context.Context, cardID, tagID int64) error
	ListTags(ctx context.Context, cardID int64) ([]dom.Tag, error)
}

// PGCardRepo implements CardRepo with Postgres.
type PGCardRepo struct {
	db *pgxpool.Pool
}

func NewPGCardRepo(db *pgxpool.Pool) *PGCardRepo {
	return &PGCardRepo{db: db}
}

const cardColumns = `id, column_id, title, description, position, start_date, due_date,
	priority, category, user_id, assigned_user_id, created_at, updated_at`

func scanCard(row interface{ Scan(...any) error }) (dom.Card, error) {
	var c dom.Card
	err := row.Scan(&c.ID, &c.ColumnID, &c.Title, &c.Description, &c.Position,
		&c.StartDate, &c.DueDate, &c.Priority, &c.Category,
		&c.UserID, &c.AssignedUserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// PositionTaken reports whether a live card in the column holds the position.
// NULL positions never collide.
func (r *PGCardRepo) PositionTaken(ctx context.Context, columnID int64, pos int, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cards WHERE column_id = $1 AND position = $2 AND id <> $3)`,
		columnID, pos, excludeID).Scan(&taken)
	return taken, err
}

func (r *PGCardRepo) Create(ctx context.Context, c dom.Card) (dom.Card, error) {
	var out dom.Card
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if c.Position != nil {
			var taken bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM cards WHERE column_id = $1 AND position = $2)`,
				c.ColumnID, *c.Position).Scan(&taken); err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: position %d in column %d", position.ErrConflict, *c.Position, c.ColumnID)
			}
		}
		var err error
		out, err = scanCard(tx.QueryRow(ctx, `
			INSERT INTO cards (column_id, title, description, position, start_date, due_date,
				priority, category, user_id, assigned_user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+cardColumns,
			c.ColumnID, c.Title, c.Description, c.Position, c.StartDate, c.DueDate,
			c.Priority, c.Category, c.UserID, c.AssignedUserID))
		return err
	})
	if utils.IsPGUniqueViolation(err) && c.Position != nil {
		return dom.Card{}, fmt.Errorf("%w: position %d in column %d", position.ErrConflict, *c.Position, c.ColumnID)
	}
	return out, err
}

func (r *PGCardRepo) GetByID(ctx context.Context, id int64) (dom.Card, error) {
	return scanCard(r.db.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = $1`, id))
}

func (r *PGCardRepo) ListByColumn(ctx context.Context, columnID int64) ([]dom.Card, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE column_id = $1 ORDER BY position NULLS LAST, id`,
		columnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update persists new field values. The creator (user_id) column is never
// included in the SET list: ownership is not transferable via update.
func (r *PGCardRepo) Update(ctx context.Context, id int64, patch dom.Card) (dom.Card, error) {
	var out dom.Card
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if patch.Position != nil {
			var taken bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM cards WHERE column_id = $1 AND position = $2 AND id <> $3)`,
				patch.ColumnID, *patch.Position, id).Scan(&taken); err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: position %d in column %d", position.ErrConflict, *patch.Position, patch.ColumnID)
			}
		}
		var err error
		out, err = scanCard(tx.QueryRow(ctx, `
			UPDATE cards SET column_id = $2, title = $3, description = $4, position = $5,
				start_date = $6, due_date = $7, priority = $8, category = $9,
				assigned_user_id = $10, updated_at = NOW()
			WHERE id = $1
			RETURNING `+cardColumns,
			id, patch.ColumnID, patch.Title, patch.Description, patch.Position,
			patch.StartDate, patch.DueDate, patch.Priority, patch.Category,
			patch.AssignedUserID))
		return err
	})
	if utils.IsPGUniqueViolation(err) && patch.Position != nil {
		return dom.Card{}, fmt.Errorf("%w: position %d in column %d", position.ErrConflict, *patch.Position, patch.ColumnID)
	}
	return out, err
}

// Delete removes the card; tasks, comments, attachments and tag links cascade.
func (r *PGCardRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	return err
}

// AttachTag links a tag to a card. Attaching twice is a no-op.
func (r *PGCardRepo) AttachTag(ctx context.Context, cardID, tagID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO card_tags (card_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		cardID, tagID)
	return err
}

func (r *PGCardRepo) DetachTag(ctx context.Context, cardID, tagID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM card_tags WHERE card_id = $1 AND tag_id = $2`, cardID, tagID)
	return err
}

func (r *PGCardRepo) ListTags(ctx context.Context, cardID int64) ([]dom.Tag, error) {
	query := `
		SELECT t.id, t.name, t.color, t.created_at, t.updated_at
		FROM tags t
		JOIN card_tags ct ON ct.tag_id = t.id
		WHERE ct.card_id = $1 ORDER BY t.name`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Tag
	for rows.Next() {
		var t dom.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
