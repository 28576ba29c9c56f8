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

// ColumnRepo provides column persistence. Position writes are
// read-check-write inside one transaction; the unique index on
// (board_id, position) is the backstop against concurrent writers.
type ColumnRepo interface {
	position.Occupancy
	Create(ctx context.Context, c dom.Column) (dom.Column, error)
	GetByID(ctx context.Context, id int64) (dom.Column, error)
	ListByBoard(ctx context.Context, boardID int64) ([]dom.Column, error)
	Update(ctx context.Context, id int64, patch dom.Column) (dom.Column, error)
	Delete(ctx context.Context, id int64) error
}

// PGColumnRepo implements ColumnRepo with Postgres.
type PGColumnRepo struct {
	db *pgxpool.Pool
}

func NewPGColumnRepo(db *pgxpool.Pool) *PGColumnRepo {
	return &PGColumnRepo{db: db}
}

const columnColumns = `id, board_id, name, position, created_at, updated_at`

func scanColumn(row interface{ Scan(...any) error }) (dom.Column, error) {
	var c dom.Column
	err := row.Scan(&c.ID, &c.BoardID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// PositionTaken reports whether a live column in the board holds the position.
// excludeID skips the column being updated (0 on create).
func (r *PGColumnRepo) PositionTaken(ctx context.Context, boardID int64, pos int, excludeID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM columns WHERE board_id = $1 AND position = $2 AND id <> $3)`,
		boardID, pos, excludeID).Scan(&taken)
	return taken, err
}

func (r *PGColumnRepo) Create(ctx context.Context, c dom.Column) (dom.Column, error) {
	var out dom.Column
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM columns WHERE board_id = $1 AND position = $2)`,
			c.BoardID, c.Position).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: position %d in board %d", position.ErrConflict, c.Position, c.BoardID)
		}
		var err error
		out, err = scanColumn(tx.QueryRow(ctx, `
			INSERT INTO columns (board_id, name, position)
			VALUES ($1, $2, $3)
			RETURNING `+columnColumns, c.BoardID, c.Name, c.Position))
		return err
	})
	if utils.IsPGUniqueViolation(err) {
		return dom.Column{}, fmt.Errorf("%w: position %d in board %d", position.ErrConflict, c.Position, c.BoardID)
	}
	return out, err
}

func (r *PGColumnRepo) GetByID(ctx context.Context, id int64) (dom.Column, error) {
	return scanColumn(r.db.QueryRow(ctx,
		`SELECT `+columnColumns+` FROM columns WHERE id = $1`, id))
}

func (r *PGColumnRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.Column, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+columnColumns+` FROM columns WHERE board_id = $1 ORDER BY position`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Column
	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGColumnRepo) Update(ctx context.Context, id int64, patch dom.Column) (dom.Column, error) {
	var out dom.Column
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM columns WHERE board_id = $1 AND position = $2 AND id <> $3)`,
			patch.BoardID, patch.Position, id).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: position %d in board %d", position.ErrConflict, patch.Position, patch.BoardID)
		}
		var err error
		out, err = scanColumn(tx.QueryRow(ctx, `
			UPDATE columns SET name = $2, position = $3, updated_at = NOW()
			WHERE id = $1
			RETURNING `+columnColumns, id, patch.Name, patch.Position))
		return err
	})
	if utils.IsPGUniqueViolation(err) {
		return dom.Column{}, fmt.Errorf("%w: position %d in board %d", position.ErrConflict, patch.Position, patch.BoardID)
	}
	return out, err
}

// Delete removes the column; its cards cascade.
func (r *PGColumnRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM columns WHERE id = $1`, id)
	return err
}
