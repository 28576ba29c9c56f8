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

// TaskRepo provides task persistence.
type TaskRepo interface {
	position.Occupancy
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	ListByCard(ctx context.Context, cardID int64) ([]dom.Task, error)
	Update(ctx context.Context, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, id int64) error
}

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, card_id, title, position, completed, completed_at, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.CardID, &t.Title, &t.Position,
		&t.Completed, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// PositionTaken reports whether a live task on the card holds the position.
func (r *PGTaskRepo) PositionTaken(ctx context.Context, cardID int64, pos int, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE card_id = $1 AND position = $2 AND id <> $3)`,
		cardID, pos, excludeID).Scan(&taken)
	return taken, err
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	var out dom.Task
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE card_id = $1 AND position = $2)`,
			t.CardID, t.Position).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: position %d in card %d", position.ErrConflict, t.Position, t.CardID)
		}
		var err error
		out, err = scanTask(tx.QueryRow(ctx, `
			INSERT INTO tasks (card_id, title, position, completed, completed_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+taskColumns,
			t.CardID, t.Title, t.Position, t.Completed, t.CompletedAt))
		return err
	})
	if utils.IsPGUniqueViolation(err) {
		return dom.Task{}, fmt.Errorf("%w: position %d in card %d", position.ErrConflict, t.Position, t.CardID)
	}
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
}

func (r *PGTaskRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE card_id = $1 ORDER BY position`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, id int64, patch dom.Task) (dom.Task, error) {
	var out dom.Task
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE card_id = $1 AND position = $2 AND id <> $3)`,
			patch.CardID, patch.Position, id).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: position %d in card %d", position.ErrConflict, patch.Position, patch.CardID)
		}
		var err error
		out, err = scanTask(tx.QueryRow(ctx, `
			UPDATE tasks SET title = $2, position = $3, completed = $4, completed_at = $5, updated_at = NOW()
			WHERE id = $1
			RETURNING `+taskColumns,
			id, patch.Title, patch.Position, patch.Completed, patch.CompletedAt))
		return err
	})
	if utils.IsPGUniqueViolation(err) {
		return dom.Task{}, fmt.Errorf("%w: position %d in card %d", position.ErrConflict, patch.Position, patch.CardID)
	}
	return out, err
}

func (r *PGTaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}
