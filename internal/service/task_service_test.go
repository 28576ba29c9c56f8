package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
)

type taskFixture struct {
	tasks         *fakeTaskRepo
	notifications *fakeNotificationRepo
	svc           *TaskService
	card          dom.Card
}

func newTaskFixture(t *testing.T, grants ...dom.BoardCollaborator) *taskFixture {
	t.Helper()
	boards := newFakeBoardRepo()
	columns := newFakeColumnRepo()
	cards := newFakeCardRepo()
	f := &taskFixture{
		tasks:         newFakeTaskRepo(),
		notifications: newFakeNotificationRepo(),
	}
	f.svc = NewTaskService(f.tasks, cards, columns, boards, f.notifications)
	board := seedBoard(t, boards, 1, grants...)
	col, _ := columns.Create(context.Background(), dom.Column{BoardID: board.ID, Name: "Todo", Position: 0})
	card, _ := cards.Create(context.Background(), dom.Card{ColumnID: col.ID, Title: "host card", UserID: 1})
	f.card = card
	return f
}

func TestTaskService_CompleteStampsTimestamp(t *testing.T) {
	f := newTaskFixture(t, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})
	frozen := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return frozen }

	task, err := f.svc.Create(context.Background(), principal(1), f.card.ID, "ship it", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatal("new task must start open")
	}

	done, err := f.svc.Complete(context.Background(), principal(2), task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(frozen) {
		t.Fatalf("got completed=%v at=%v, want stamped %v", done.Completed, done.CompletedAt, frozen)
	}
}

func TestTaskService_ExplicitStampHonored(t *testing.T) {
	f := newTaskFixture(t)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	task, _ := f.svc.Create(context.Background(), principal(1), f.card.ID, "backdated", 0)
	stamp := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	done := true
	out, err := f.svc.Update(context.Background(), principal(1), task.ID, TaskInput{
		Completed: &done, CompletedAt: &stamp, HasStamp: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.CompletedAt == nil || !out.CompletedAt.Equal(stamp) {
		t.Fatalf("got %v, want caller's stamp %v", out.CompletedAt, stamp)
	}
}

func TestTaskService_ReopenKeepsTimestampAsHistory(t *testing.T) {
	f := newTaskFixture(t)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	task, _ := f.svc.Create(context.Background(), principal(1), f.card.ID, "flaky", 0)
	done, _ := f.svc.Complete(context.Background(), principal(1), task.ID)

	open := false
	out, err := f.svc.Update(context.Background(), principal(1), task.ID, TaskInput{Completed: &open})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if out.Completed {
		t.Fatal("task should be open again")
	}
	if out.CompletedAt == nil || !out.CompletedAt.Equal(*done.CompletedAt) {
		t.Fatal("reopening must keep completed_at as history")
	}
}

func TestTaskService_CompletionNotifiesCardCreator(t *testing.T) {
	f := newTaskFixture(t, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})

	task, _ := f.svc.Create(context.Background(), principal(1), f.card.ID, "notify", 0)
	if _, err := f.svc.Complete(context.Background(), principal(2), task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	list, _ := f.notifications.ListByUser(context.Background(), 1, false)
	if len(list) != 1 || list[0].Type != dom.NotificationTaskCompleted {
		t.Fatalf("want one task_completed notification for the card creator, got %+v", list)
	}

	// Completing an already-completed task does not notify again.
	if _, err := f.svc.Complete(context.Background(), principal(2), task.ID); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	list, _ = f.notifications.ListByUser(context.Background(), 1, false)
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want still 1", len(list))
	}
}

func TestTaskService_PositionRequiredAndUnique(t *testing.T) {
	f := newTaskFixture(t)

	if _, err := f.svc.Create(context.Background(), principal(1), f.card.ID, "a", 0); err != nil {
		t.Fatalf("first task: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), principal(1), f.card.ID, "b", 0); !errors.Is(err, position.ErrConflict) {
		t.Fatalf("same slot: got %v, want ErrConflict", err)
	}
	if _, err := f.svc.Create(context.Background(), principal(1), f.card.ID, "c", -2); !errors.Is(err, position.ErrInvalid) {
		t.Fatalf("negative slot: got %v, want ErrInvalid", err)
	}
}

func TestTaskService_ViewerCannotWrite(t *testing.T) {
	f := newTaskFixture(t, dom.BoardCollaborator{UserID: 3, Role: dom.RoleView})

	if _, err := f.svc.Create(context.Background(), principal(3), f.card.ID, "nope", 0); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("viewer creating task: got %v, want ErrPermissionDenied", err)
	}
	task, _ := f.svc.Create(context.Background(), principal(1), f.card.ID, "ok", 0)
	if _, err := f.svc.Get(context.Background(), principal(3), task.ID); err != nil {
		t.Fatalf("viewer reading task: %v", err)
	}
	if err := f.svc.Delete(context.Background(), principal(3), task.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("viewer deleting task: got %v, want ErrPermissionDenied", err)
	}
}
