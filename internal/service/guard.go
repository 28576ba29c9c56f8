package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/permission"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// boardGuard composes the permission evaluator with board lookups. Every
// write path goes through requireBoard before touching storage.
//
// Denial policy (single policy, applied everywhere): a principal with no
// relation to the board at all gets ErrNotFound so board existence is not
// leaked; a principal who can view but lacks the required level gets
// ErrPermissionDenied. Superusers bypass both.
type boardGuard struct {
	boards repo.BoardRepo
}

// requireBoard loads the board and checks that the principal holds at least
// the required role on it. Pure permission math lives in the permission
// package; this only wires it to storage.
func (g boardGuard) requireBoard(ctx context.Context, boardID int64, p auth.Principal, required dom.Role) (dom.Board, error) {
	board, err := g.boards.GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Board{}, ErrNotFound
		}
		return dom.Board{}, err
	}
	if p.IsSuperuser {
		return board, nil
	}
	grants, err := g.boards.Grants(ctx, board.ID)
	if err != nil {
		return dom.Board{}, err
	}
	if !permission.Related(board, grants, p.UserID) {
		return dom.Board{}, ErrNotFound
	}
	if !permission.Allowed(board, grants, p.UserID, required) {
		return dom.Board{}, ErrPermissionDenied
	}
	return board, nil
}

// cardGuard resolves the card -> column -> board ownership chain and applies
// the board guard at the end of it.
type cardGuard struct {
	cards   repo.CardRepo
	columns repo.ColumnRepo
	guard   boardGuard
}

func (g cardGuard) requireCard(ctx context.Context, p auth.Principal, cardID int64, required dom.Role) (dom.Card, dom.Board, error) {
	card, err := g.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Card{}, dom.Board{}, fmt.Errorf("%w: card %d", ErrNotFound, cardID)
		}
		return dom.Card{}, dom.Board{}, err
	}
	col, err := g.columns.GetByID(ctx, card.ColumnID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Card{}, dom.Board{}, ErrNotFound
		}
		return dom.Card{}, dom.Board{}, err
	}
	board, err := g.guard.requireBoard(ctx, col.BoardID, p, required)
	if err != nil {
		return dom.Card{}, dom.Board{}, err
	}
	return card, board, nil
}
