package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	"github.com/ClarkAshida/Kanban-API/internal/cache"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/repo"
	"github.com/ClarkAshida/Kanban-API/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// BoardService guards board CRUD and collaborator management.
type BoardService struct {
	repo  repo.BoardRepo
	users repo.UserRepo
	cache *cache.BoardCache
	guard boardGuard
	sf    singleflight.Group
}

// NewBoardService creates a BoardService. If c is nil, caching is disabled.
func NewBoardService(r repo.BoardRepo, users repo.UserRepo, c *cache.BoardCache) *BoardService {
	return &BoardService{repo: r, users: users, cache: c, guard: boardGuard{boards: r}}
}

// Create stores a new board owned by the principal.
func (s *BoardService) Create(ctx context.Context, p auth.Principal, name string) (dom.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Board{}, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	b, err := s.repo.Create(ctx, dom.Board{Name: name, OwnerID: p.UserID})
	if err != nil {
		return dom.Board{}, err
	}
	s.invalidate(ctx, p.UserID)
	return b, nil
}

// Get returns a board the principal may at least view.
func (s *BoardService) Get(ctx context.Context, p auth.Principal, id int64) (dom.Board, error) {
	return s.guard.requireBoard(ctx, id, p, dom.RoleView)
}

// List returns boards where the principal is owner or collaborator,
// deduplicated. Cached per user; singleflight collapses concurrent misses.
func (s *BoardService) List(ctx context.Context, p auth.Principal) ([]dom.Board, error) {
	if s.cache == nil {
		return s.repo.ListForUser(ctx, p.UserID)
	}
	key := "list:" + strconv.FormatInt(p.UserID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, p.UserID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.ListForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, p.UserID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Board), nil
}

// Update renames a board; requires edit. The owner field is preserved no
// matter what the caller submitted.
func (s *BoardService) Update(ctx context.Context, p auth.Principal, id int64, name string) (dom.Board, error) {
	board, err := s.guard.requireBoard(ctx, id, p, dom.RoleEdit)
	if err != nil {
		return dom.Board{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Board{}, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	out, err := s.repo.Update(ctx, board.ID, name)
	if err != nil {
		return dom.Board{}, err
	}
	s.invalidateBoardUsers(ctx, board)
	return out, nil
}

// Delete removes a board and everything under it; requires admin.
func (s *BoardService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	board, err := s.guard.requireBoard(ctx, id, p, dom.RoleAdmin)
	if err != nil {
		return err
	}
	s.invalidateBoardUsers(ctx, board)
	return s.repo.Delete(ctx, board.ID)
}

// ListCollaborators returns the grants on a board; requires view.
func (s *BoardService) ListCollaborators(ctx context.Context, p auth.Principal, boardID int64) ([]dom.BoardCollaborator, error) {
	if _, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleView); err != nil {
		return nil, err
	}
	return s.repo.Grants(ctx, boardID)
}

// ListAllCollaborators is the staff-only system-wide listing override.
func (s *BoardService) ListAllCollaborators(ctx context.Context, p auth.Principal) ([]dom.BoardCollaborator, error) {
	if !p.IsStaff && !p.IsSuperuser {
		return nil, ErrPermissionDenied
	}
	return s.repo.ListAllCollaborators(ctx)
}

// AddCollaborator grants a role on the board; requires admin. The owner
// cannot be granted a role, and the target user must exist.
func (s *BoardService) AddCollaborator(ctx context.Context, p auth.Principal, boardID, userID int64, role dom.Role) (dom.BoardCollaborator, error) {
	board, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleAdmin)
	if err != nil {
		return dom.BoardCollaborator{}, err
	}
	if !role.Valid() {
		return dom.BoardCollaborator{}, fmt.Errorf("%w: role must be view, edit or admin", ErrValidation)
	}
	if userID == board.OwnerID {
		return dom.BoardCollaborator{}, ErrOwnerAsCollaborator
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.BoardCollaborator{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return dom.BoardCollaborator{}, err
	}
	out, err := s.repo.AddCollaborator(ctx, dom.BoardCollaborator{
		BoardID: board.ID, UserID: userID, Role: role,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.BoardCollaborator{}, ErrCollaboratorExists
		}
		return dom.BoardCollaborator{}, err
	}
	s.invalidate(ctx, userID)
	return out, nil
}

// UpdateCollaboratorRole changes an existing grant; requires admin.
func (s *BoardService) UpdateCollaboratorRole(ctx context.Context, p auth.Principal, boardID, collabID int64, role dom.Role) (dom.BoardCollaborator, error) {
	if _, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleAdmin); err != nil {
		return dom.BoardCollaborator{}, err
	}
	if !role.Valid() {
		return dom.BoardCollaborator{}, fmt.Errorf("%w: role must be view, edit or admin", ErrValidation)
	}
	existing, err := s.repo.GetCollaborator(ctx, collabID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.BoardCollaborator{}, ErrNotFound
		}
		return dom.BoardCollaborator{}, err
	}
	if existing.BoardID != boardID {
		return dom.BoardCollaborator{}, ErrNotFound
	}
	return s.repo.UpdateCollaboratorRole(ctx, collabID, role)
}

// RemoveCollaborator revokes a grant; requires admin.
func (s *BoardService) RemoveCollaborator(ctx context.Context, p auth.Principal, boardID, collabID int64) error {
	if _, err := s.guard.requireBoard(ctx, boardID, p, dom.RoleAdmin); err != nil {
		return err
	}
	existing, err := s.repo.GetCollaborator(ctx, collabID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if existing.BoardID != boardID {
		return ErrNotFound
	}
	if err := s.repo.RemoveCollaborator(ctx, collabID); err != nil {
		return err
	}
	s.invalidate(ctx, existing.UserID)
	return nil
}

func (s *BoardService) invalidate(ctx context.Context, userIDs ...int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userIDs...)
	}
}

// invalidateBoardUsers drops cached lists for the owner and every collaborator.
func (s *BoardService) invalidateBoardUsers(ctx context.Context, board dom.Board) {
	if s.cache == nil {
		return
	}
	ids := []int64{board.OwnerID}
	if grants, err := s.repo.Grants(ctx, board.ID); err == nil {
		for _, g := range grants {
			ids = append(ids, g.UserID)
		}
	}
	_ = s.cache.Invalidate(ctx, ids...)
}
