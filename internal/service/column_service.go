package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ColumnService guards column CRUD. Columns are scoped to a board; position
// is unique within the board.
type ColumnService struct {
	repo  repo.ColumnRepo
	guard boardGuard
}

// NewColumnService returns a new ColumnService.
func NewColumnService(r repo.ColumnRepo, boards repo.BoardRepo) *ColumnService {
	return &ColumnService{repo: r, guard: boardGuard{boards: boards}}
}

// Create adds a column to a board; requires edit on the board.
func (s *ColumnService) Create(ctx context.Context, p auth.Principal, boardID int64, name string, pos int) (dom.Column, error) {
	board, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleEdit)
	if err != nil {
		return dom.Column{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Column{}, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if err := position.Validate(ctx, s.repo, board.ID, &pos, true, 0); err != nil {
		return dom.Column{}, err
	}
	return s.repo.Create(ctx, dom.Column{BoardID: board.ID, Name: name, Position: pos})
}

// Get returns a column; requires view on its board.
func (s *ColumnService) Get(ctx context.Context, p auth.Principal, id int64) (dom.Column, error) {
	col, err := s.load(ctx, id)
	if err != nil {
		return dom.Column{}, err
	}
	if _, err := s.guard.requireBoard(ctx, col.BoardID, p, dom.RoleView); err != nil {
		return dom.Column{}, err
	}
	return col, nil
}

// ListByBoard returns a board's columns ordered by position; requires view.
func (s *ColumnService) ListByBoard(ctx context.Context, p auth.Principal, boardID int64) ([]dom.Column, error) {
	if _, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleView); err != nil {
		return nil, err
	}
	return s.repo.ListByBoard(ctx, boardID)
}

// Update changes name and/or position; requires edit on the board. The
// column cannot change boards, and the record being updated is excluded from
// the collision check.
func (s *ColumnService) Update(ctx context.Context, p auth.Principal, id int64, name *string, pos *int) (dom.Column, error) {
	col, err := s.load(ctx, id)
	if err != nil {
		return dom.Column{}, err
	}
	if _, err := s.guard.requireBoard(ctx, col.BoardID, p, dom.RoleEdit); err != nil {
		return dom.Column{}, err
	}
	patch := col
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
		if patch.Name == "" {
			return dom.Column{}, fmt.Errorf("%w: name must not be blank", ErrValidation)
		}
	}
	if pos != nil {
		patch.Position = *pos
	}
	if err := position.Validate(ctx, s.repo, col.BoardID, &patch.Position, true, col.ID); err != nil {
		return dom.Column{}, err
	}
	return s.repo.Update(ctx, col.ID, patch)
}

// Delete removes a column and its cards; requires admin on the board.
func (s *ColumnService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	col, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.guard.requireBoard(ctx, col.BoardID, p, dom.RoleAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, col.ID)
}

func (s *ColumnService) load(ctx context.Context, id int64) (dom.Column, error) {
	col, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Column{}, ErrNotFound
		}
		return dom.Column{}, err
	}
	return col, nil
}
