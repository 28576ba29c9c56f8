package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BoardRepo provides board and collaborator persistence. Listing methods
// return materialized result sets with their scope filter spelled out in SQL.
type BoardRepo interface {
	Create(ctx context.Context, b dom.Board) (dom.Board, error)
	GetByID(ctx context.Context, id int64) (dom.Board, error)
	Update(ctx context.Context, id int64, name string) (dom.Board, error)
	Delete(ctx context.Context, id int64) error
	// ListForUser returns boards where the user is owner OR collaborator,
	// deduplicated.
	ListForUser(ctx context.Context, userID int64) ([]dom.Board, error)

	Grants(ctx context.Context, boardID int64) ([]dom.BoardCollaborator, error)
	AddCollaborator(ctx context.Context, c dom.BoardCollaborator) (dom.BoardCollaborator, error)
	GetCollaborator(ctx context.Context, id int64) (dom.BoardCollaborator, error)
	UpdateCollaboratorRole(ctx context.Context, id int64, role dom.Role) (dom.BoardCollaborator, error)
	RemoveCollaborator(ctx context.Context, id int64) error
	// ListAllCollaborators is the staff-only system-wide listing override.
	ListAllCollaborators(ctx context.Context) ([]dom.BoardCollaborator, error)
}

// PGBoardRepo implements BoardRepo with Postgres.
type PGBoardRepo struct {
	db *pgxpool.Pool
}

func NewPGBoardRepo(db *pgxpool.Pool) *PGBoardRepo {
	return &PGBoardRepo{db: db}
}

const boardColumns = `id, name, owner_id, created_at, updated_at`

func scanBoard(row interface{ Scan(...any) error }) (dom.Board, error) {
	var b dom.Board
	err := row.Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *PGBoardRepo) Create(ctx context.Context, b dom.Board) (dom.Board, error) {
	query := `
		INSERT INTO boards (name, owner_id)
		VALUES ($1, $2)
		RETURNING ` + boardColumns
	return scanBoard(r.db.QueryRow(ctx, query, b.Name, b.OwnerID))
}

func (r *PGBoardRepo) GetByID(ctx context.Context, id int64) (dom.Board, error) {
	return scanBoard(r.db.QueryRow(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = $1`, id))
}

// Update changes the name only; owner_id is never touched here
// (ownership is not transferable via update).
func (r *PGBoardRepo) Update(ctx context.Context, id int64, name string) (dom.Board, error) {
	query := `
		UPDATE boards SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + boardColumns
	return scanBoard(r.db.QueryRow(ctx, query, id, name))
}

// Delete removes the board; columns, cards, tasks, comments and attachments
// go with it through ON DELETE CASCADE.
func (r *PGBoardRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id)
	return err
}

func (r *PGBoardRepo) ListForUser(ctx context.Context, userID int64) ([]dom.Board, error) {
	query := `
		SELECT ` + boardColumns + ` FROM boards WHERE owner_id = $1
		UNION
		SELECT b.id, b.name, b.owner_id, b.created_at, b.updated_at
		FROM boards b
		JOIN board_collaborators c ON c.board_id = b.id AND c.user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

const collaboratorColumns = `id, board_id, user_id, role, created_at`

func scanCollaborator(row interface{ Scan(...any) error }) (dom.BoardCollaborator, error) {
	var c dom.BoardCollaborator
	err := row.Scan(&c.ID, &c.BoardID, &c.UserID, &c.Role, &c.CreatedAt)
	return c, err
}

func (r *PGBoardRepo) Grants(ctx context.Context, boardID int64) ([]dom.BoardCollaborator, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+collaboratorColumns+` FROM board_collaborators WHERE board_id = $1 ORDER BY id`,
		boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCollaborators(rows)
}

func (r *PGBoardRepo) AddCollaborator(ctx context.Context, c dom.BoardCollaborator) (dom.BoardCollaborator, error) {
	query := `
		INSERT INTO board_collaborators (board_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING ` + collaboratorColumns
	return scanCollaborator(r.db.QueryRow(ctx, query, c.BoardID, c.UserID, c.Role))
}

func (r *PGBoardRepo) GetCollaborator(ctx context.Context, id int64) (dom.BoardCollaborator, error) {
	return scanCollaborator(r.db.QueryRow(ctx,
		`SELECT `+collaboratorColumns+` FROM board_collaborators WHERE id = $1`, id))
}

func (r *PGBoardRepo) UpdateCollaboratorRole(ctx context.Context, id int64, role dom.Role) (dom.BoardCollaborator, error) {
	query := `
		UPDATE board_collaborators SET role = $2
		WHERE id = $1
		RETURNING ` + collaboratorColumns
	return scanCollaborator(r.db.QueryRow(ctx, query, id, role))
}

func (r *PGBoardRepo) RemoveCollaborator(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM board_collaborators WHERE id = $1`, id)
	return err
}

func (r *PGBoardRepo) ListAllCollaborators(ctx context.Context) ([]dom.BoardCollaborator, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+collaboratorColumns+` FROM board_collaborators ORDER BY board_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCollaborators(rows)
}

func collectCollaborators(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]dom.BoardCollaborator, error) {
	var list []dom.BoardCollaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
