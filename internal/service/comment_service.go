package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/permission"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// CommentService guards card comments. Viewers may comment; deletion takes
// the author or a board admin.
type CommentService struct {
	repo          repo.CommentRepo
	boards        repo.BoardRepo
	notifications repo.NotificationRepo
	guard         cardGuard
}

// NewCommentService returns a new CommentService. notifications may be nil.
func NewCommentService(r repo.CommentRepo, cards repo.CardRepo, columns repo.ColumnRepo, boards repo.BoardRepo, notifications repo.NotificationRepo) *CommentService {
	return &CommentService{
		repo: r, boards: boards, notifications: notifications,
		guard: cardGuard{cards: cards, columns: columns, guard: boardGuard{boards: boards}},
	}
}

// Create stores a comment; requires view on the card's board. The principal
// is stamped as author, and the card creator gets a comment notification.
func (s *CommentService) Create(ctx context.Context, p auth.Principal, cardID int64, text string) (dom.Comment, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleView)
	if err != nil {
		return dom.Comment{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return dom.Comment{}, fmt.Errorf("%w: comment_text must not be blank", ErrValidation)
	}
	out, err := s.repo.Create(ctx, dom.Comment{CardID: card.ID, UserID: p.UserID, Text: text})
	if err != nil {
		return dom.Comment{}, err
	}
	if s.notifications != nil && card.UserID != p.UserID {
		_, _ = s.notifications.Create(ctx, dom.Notification{
			UserID:  card.UserID,
			Type:    dom.NotificationComment,
			Message: fmt.Sprintf("new comment on card %q", card.Title),
		})
	}
	return out, nil
}

// ListByCard returns a card's comments in order; requires view.
func (s *CommentService) ListByCard(ctx context.Context, p auth.Principal, cardID int64) ([]dom.Comment, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleView)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCard(ctx, card.ID)
}

// Delete removes a comment. The author may delete their own; otherwise
// admin on the board is required.
func (s *CommentService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	_, board, err := s.guard.requireCard(ctx, p, comment.CardID, dom.RoleView)
	if err != nil {
		return err
	}
	if comment.UserID != p.UserID && !p.IsSuperuser {
		grants, err := s.boards.Grants(ctx, board.ID)
		if err != nil {
			return err
		}
		if !permission.Allowed(board, grants, p.UserID, dom.RoleAdmin) {
			return ErrPermissionDenied
		}
	}
	return s.repo.Delete(ctx, id)
}
