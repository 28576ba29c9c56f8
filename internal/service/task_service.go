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

// TaskInput carries writable task fields for updates; nil means unchanged.
type TaskInput struct {
	Title       *string
	Position    *int
	Completed   *bool
	CompletedAt *time.Time
	HasStamp    bool
}

// TaskService guards task CRUD and the open/completed transition.
type TaskService struct {
	repo          repo.TaskRepo
	notifications repo.NotificationRepo
	guard         cardGuard
	now           func() time.Time
}

// NewTaskService returns a new TaskService. notifications may be nil.
func NewTaskService(r repo.TaskRepo, cards repo.CardRepo, columns repo.ColumnRepo, boards repo.BoardRepo, notifications repo.NotificationRepo) *TaskService {
	return &TaskService{
		repo:          r,
		notifications: notifications,
		guard:         cardGuard{cards: cards, columns: columns, guard: boardGuard{boards: boards}},
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Create adds a task to a card; requires edit on the board.
func (s *TaskService) Create(ctx context.Context, p auth.Principal, cardID int64, title string, pos int) (dom.Task, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleEdit)
	if err != nil {
		return dom.Task{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Task{}, fmt.Errorf("%w: title must not be blank", ErrValidation)
	}
	if err := position.Validate(ctx, s.repo, card.ID, &pos, true, 0); err != nil {
		return dom.Task{}, err
	}
	return s.repo.Create(ctx, dom.Task{CardID: card.ID, Title: title, Position: pos})
}

// Get returns a task; requires view on the board.
func (s *TaskService) Get(ctx context.Context, p auth.Principal, id int64) (dom.Task, error) {
	task, _, err := s.loadGuarded(ctx, p, id, dom.RoleView)
	return task, err
}

// ListByCard returns a card's tasks ordered by position; requires view.
func (s *TaskService) ListByCard(ctx context.Context, p auth.Principal, cardID int64) ([]dom.Task, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleView)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCard(ctx, card.ID)
}

// Update changes task fields; requires edit on the board.
//
// Completion transition: setting completed=true stamps completed_at with now
// when the caller omitted it; setting completed=false clears the flag but
// keeps completed_at as history.
func (s *TaskService) Update(ctx context.Context, p auth.Principal, id int64, in TaskInput) (dom.Task, error) {
	task, card, err := s.loadGuarded(ctx, p, id, dom.RoleEdit)
	if err != nil {
		return dom.Task{}, err
	}
	patch := task
	if in.Title != nil {
		patch.Title = strings.TrimSpace(*in.Title)
		if patch.Title == "" {
			return dom.Task{}, fmt.Errorf("%w: title must not be blank", ErrValidation)
		}
	}
	if in.Position != nil {
		patch.Position = *in.Position
	}
	justCompleted := false
	if in.Completed != nil {
		if *in.Completed && !task.Completed {
			justCompleted = true
		}
		patch.Completed = *in.Completed
	}
	if in.HasStamp {
		patch.CompletedAt = in.CompletedAt
	}
	if patch.Completed && patch.CompletedAt == nil {
		now := s.now()
		patch.CompletedAt = &now
	}
	if err := position.Validate(ctx, s.repo, task.CardID, &patch.Position, true, task.ID); err != nil {
		return dom.Task{}, err
	}
	out, err := s.repo.Update(ctx, task.ID, patch)
	if err != nil {
		return dom.Task{}, err
	}
	if justCompleted {
		s.notifyCompleted(ctx, card, out)
	}
	return out, nil
}

// Complete is a shorthand for the open -> completed transition.
func (s *TaskService) Complete(ctx context.Context, p auth.Principal, id int64) (dom.Task, error) {
	done := true
	return s.Update(ctx, p, id, TaskInput{Completed: &done})
}

// Delete removes a task; requires admin on the board.
func (s *TaskService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	task, _, err := s.loadGuarded(ctx, p, id, dom.RoleAdmin)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task.ID)
}

func (s *TaskService) loadGuarded(ctx context.Context, p auth.Principal, id int64, required dom.Role) (dom.Task, dom.Card, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, dom.Card{}, ErrNotFound
		}
		return dom.Task{}, dom.Card{}, err
	}
	card, _, err := s.guard.requireCard(ctx, p, task.CardID, required)
	if err != nil {
		return dom.Task{}, dom.Card{}, err
	}
	return task, card, nil
}

func (s *TaskService) notifyCompleted(ctx context.Context, card dom.Card, task dom.Task) {
	if s.notifications == nil {
		return
	}
	_, _ = s.notifications.Create(ctx, dom.Notification{
		UserID:  card.UserID,
		Type:    dom.NotificationTaskCompleted,
		Message: fmt.Sprintf("task %q on card %q was completed", task.Title, card.Title),
	})
}
