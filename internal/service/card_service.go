package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// CardInput carries the writable card fields. Nil pointers on update mean
// "leave unchanged". The creator is never part of the input: it is stamped
// from the principal on create and preserved on update.
type CardInput struct {
	ColumnID       *int64
	Title          *string
	Description    *string
	Position       *int
	HasPosition    bool // distinguishes "clear position" from "leave as is"
	StartDate      *time.Time
	HasStart       bool
	DueDate        *time.Time
	HasDue         bool
	Priority       *dom.Priority
	Category       *dom.Category
	AssignedUserID *int64
	HasAssignee    bool
}

// CardService guards card CRUD, the card-tag relation and the cross-column
// move notification.
type CardService struct {
	repo          repo.CardRepo
	columns       repo.ColumnRepo
	tags          repo.TagRepo
	notifications repo.NotificationRepo
	boards        repo.BoardRepo
	guard         boardGuard
}

// NewCardService returns a new CardService. notifications may be nil, which
// disables move notifications (useful in tests).
func NewCardService(r repo.CardRepo, columns repo.ColumnRepo, tags repo.TagRepo, boards repo.BoardRepo, notifications repo.NotificationRepo) *CardService {
	return &CardService{
		repo: r, columns: columns, tags: tags, notifications: notifications,
		boards: boards, guard: boardGuard{boards: boards},
	}
}

// Create stores a card in a column; requires edit on the column's board.
// The principal is stamped as creator.
func (s *CardService) Create(ctx context.Context, p auth.Principal, c dom.Card) (dom.Card, error) {
	col, board, err := s.requireColumn(ctx, p, c.ColumnID, dom.RoleEdit)
	if err != nil {
		return dom.Card{}, err
	}
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return dom.Card{}, fmt.Errorf("%w: title must not be blank", ErrValidation)
	}
	if c.Priority == "" {
		c.Priority = dom.PriorityMedium
	}
	if c.Category == "" {
		c.Category = dom.CategoryBacklog
	}
	if err := s.validateFields(ctx, board, c); err != nil {
		return dom.Card{}, err
	}
	// Card position may be null pending manual placement.
	if err := position.Validate(ctx, s.repo, col.ID, c.Position, false, 0); err != nil {
		return dom.Card{}, err
	}
	c.UserID = p.UserID
	return s.repo.Create(ctx, c)
}

// Get returns a card; requires view on its board.
func (s *CardService) Get(ctx context.Context, p auth.Principal, id int64) (dom.Card, error) {
	card, _, err := s.loadGuarded(ctx, p, id, dom.RoleView)
	return card, err
}

// ListByColumn returns a column's cards ordered by position; requires view.
func (s *CardService) ListByColumn(ctx context.Context, p auth.Principal, columnID int64) ([]dom.Card, error) {
	if _, _, err := s.requireColumn(ctx, p, columnID, dom.RoleView); err != nil {
		return nil, err
	}
	return s.repo.ListByColumn(ctx, columnID)
}

// Update changes card fields; requires edit on the source board and, when
// the card moves, on the destination board too. Moving a card emits a
// card_moved notification to the assignee.
func (s *CardService) Update(ctx context.Context, p auth.Principal, id int64, in CardInput) (dom.Card, error) {
	card, board, err := s.loadGuarded(ctx, p, id, dom.RoleEdit)
	if err != nil {
		return dom.Card{}, err
	}
	patch := card
	moved := false
	if in.ColumnID != nil && *in.ColumnID != card.ColumnID {
		destCol, destBoard, err := s.requireColumn(ctx, p, *in.ColumnID, dom.RoleEdit)
		if err != nil {
			return dom.Card{}, err
		}
		patch.ColumnID = destCol.ID
		board = destBoard
		moved = true
	}
	if in.Title != nil {
		patch.Title = strings.TrimSpace(*in.Title)
		if patch.Title == "" {
			return dom.Card{}, fmt.Errorf("%w: title must not be blank", ErrValidation)
		}
	}
	if in.Description != nil {
		patch.Description = strings.TrimSpace(*in.Description)
	}
	if in.HasPosition {
		patch.Position = in.Position
	} else if moved {
		// A move without an explicit slot lands unplaced; no renumbering.
		patch.Position = nil
	}
	if in.HasStart {
		patch.StartDate = in.StartDate
	}
	if in.HasDue {
		patch.DueDate = in.DueDate
	}
	if in.Priority != nil {
		patch.Priority = *in.Priority
	}
	if in.Category != nil {
		patch.Category = *in.Category
	}
	if in.HasAssignee {
		patch.AssignedUserID = in.AssignedUserID
	}
	if err := s.validateFields(ctx, board, patch); err != nil {
		return dom.Card{}, err
	}
	if err := position.Validate(ctx, s.repo, patch.ColumnID, patch.Position, false, card.ID); err != nil {
		return dom.Card{}, err
	}
	out, err := s.repo.Update(ctx, card.ID, patch)
	if err != nil {
		return dom.Card{}, err
	}
	if moved {
		s.notifyMoved(ctx, out)
	}
	return out, nil
}

// Delete removes a card; requires admin on the board.
func (s *CardService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	card, _, err := s.loadGuarded(ctx, p, id, dom.RoleAdmin)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, card.ID)
}

// AttachTag links an existing tag to a card; requires edit.
func (s *CardService) AttachTag(ctx context.Context, p auth.Principal, cardID, tagID int64) error {
	card, _, err := s.loadGuarded(ctx, p, cardID, dom.RoleEdit)
	if err != nil {
		return err
	}
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: tag %d", ErrNotFound, tagID)
		}
		return err
	}
	return s.repo.AttachTag(ctx, card.ID, tagID)
}

// DetachTag unlinks a tag from a card; requires edit.
func (s *CardService) DetachTag(ctx context.Context, p auth.Principal, cardID, tagID int64) error {
	card, _, err := s.loadGuarded(ctx, p, cardID, dom.RoleEdit)
	if err != nil {
		return err
	}
	return s.repo.DetachTag(ctx, card.ID, tagID)
}

// ListTags returns a card's tags; requires view.
func (s *CardService) ListTags(ctx context.Context, p auth.Principal, cardID int64) ([]dom.Tag, error) {
	card, _, err := s.loadGuarded(ctx, p, cardID, dom.RoleView)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTags(ctx, card.ID)
}

// validateFields checks enums, the temporal invariant and the assignee.
func (s *CardService) validateFields(ctx context.Context, board dom.Board, c dom.Card) error {
	if !c.Priority.Valid() {
		return fmt.Errorf("%w: priority must be U, I, M or L", ErrValidation)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, c.Category)
	}
	if c.StartDate != nil && c.DueDate != nil && c.DueDate.Before(*c.StartDate) {
		return ErrDueBeforeStart
	}
	if c.AssignedUserID != nil {
		grants, err := s.boards.Grants(ctx, board.ID)
		if err != nil {
			return err
		}
		assignee := *c.AssignedUserID
		ok := assignee == board.OwnerID
		for _, g := range grants {
			if g.UserID == assignee {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: assigned user %d has no access to board %d", ErrValidation, assignee, board.ID)
		}
	}
	return nil
}

// requireColumn loads a column and checks the required role on its board.
func (s *CardService) requireColumn(ctx context.Context, p auth.Principal, columnID int64, required dom.Role) (dom.Column, dom.Board, error) {
	col, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Column{}, dom.Board{}, fmt.Errorf("%w: column %d", ErrNotFound, columnID)
		}
		return dom.Column{}, dom.Board{}, err
	}
	board, err := s.guard.requireBoard(ctx, col.BoardID, p, required)
	if err != nil {
		return dom.Column{}, dom.Board{}, err
	}
	return col, board, nil
}

// loadGuarded loads a card and checks the required role on its board.
func (s *CardService) loadGuarded(ctx context.Context, p auth.Principal, id int64, required dom.Role) (dom.Card, dom.Board, error) {
	card, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Card{}, dom.Board{}, ErrNotFound
		}
		return dom.Card{}, dom.Board{}, err
	}
	_, board, err := s.requireColumn(ctx, p, card.ColumnID, required)
	if err != nil {
		return dom.Card{}, dom.Board{}, err
	}
	return card, board, nil
}

func (s *CardService) notifyMoved(ctx context.Context, card dom.Card) {
	if s.notifications == nil || card.AssignedUserID == nil {
		return
	}
	_, _ = s.notifications.Create(ctx, dom.Notification{
		UserID:  *card.AssignedUserID,
		Type:    dom.NotificationCardMoved,
		Message: fmt.Sprintf("card %q was moved to another column", card.Title),
	})
}
