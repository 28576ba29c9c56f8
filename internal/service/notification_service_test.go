package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
)

func TestNotificationService_ListOwnOnly(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	repo.Create(context.Background(), dom.Notification{UserID: 1, Type: dom.NotificationComment, Message: "a"})
	repo.Create(context.Background(), dom.Notification{UserID: 2, Type: dom.NotificationComment, Message: "b"})

	list, err := svc.List(context.Background(), principal(1), false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Message != "a" {
		t.Fatalf("got %+v", list)
	}
}

func TestNotificationService_MarkReadAndUnreadFilter(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	n, _ := repo.Create(context.Background(), dom.Notification{UserID: 1, Type: dom.NotificationComment, Message: "a"})

	out, err := svc.MarkRead(context.Background(), principal(1), n.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !out.Read {
		t.Fatal("notification should be read")
	}
	unread, _ := svc.List(context.Background(), principal(1), true)
	if len(unread) != 0 {
		t.Fatalf("unread filter: got %+v", unread)
	}
}

func TestNotificationService_ForeignIDsLookMissing(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	n, _ := repo.Create(context.Background(), dom.Notification{UserID: 1, Type: dom.NotificationComment, Message: "a"})

	if _, err := svc.MarkRead(context.Background(), principal(2), n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign mark read: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), principal(2), n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), principal(1), n.ID); err != nil {
		t.Fatalf("own delete: %v", err)
	}
}
