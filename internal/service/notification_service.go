package service

import (
	"context"
	"errors"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// NotificationService exposes a user's own notifications. Rows are created
// internally by card, task and comment services, never through the API.
type NotificationService struct {
	repo repo.NotificationRepo
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(r repo.NotificationRepo) *NotificationService {
	return &NotificationService{repo: r}
}

// List returns the principal's notifications, optionally unread only.
func (s *NotificationService) List(ctx context.Context, p auth.Principal, unreadOnly bool) ([]dom.Notification, error) {
	return s.repo.ListByUser(ctx, p.UserID, unreadOnly)
}

// MarkRead flags a notification as read. Only the addressee may do this;
// anyone else gets ErrNotFound so foreign IDs reveal nothing.
func (s *NotificationService) MarkRead(ctx context.Context, p auth.Principal, id int64) (dom.Notification, error) {
	n, err := s.load(ctx, p, id)
	if err != nil {
		return dom.Notification{}, err
	}
	return s.repo.MarkRead(ctx, n.ID)
}

// Delete removes one of the principal's notifications.
func (s *NotificationService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	n, err := s.load(ctx, p, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, n.ID)
}

func (s *NotificationService) load(ctx context.Context, p auth.Principal, id int64) (dom.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Notification{}, ErrNotFound
		}
		return dom.Notification{}, err
	}
	if n.UserID != p.UserID {
		return dom.Notification{}, ErrNotFound
	}
	return n, nil
}
