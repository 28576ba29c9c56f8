package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
)

type cardFixture struct {
	boards        *fakeBoardRepo
	columns       *fakeColumnRepo
	cards         *fakeCardRepo
	tags          *fakeTagRepo
	notifications *fakeNotificationRepo
	svc           *CardService
	board         dom.Board
	column        dom.Column
}

func newCardFixture(t *testing.T, grants ...dom.BoardCollaborator) *cardFixture {
	t.Helper()
	f := &cardFixture{
		boards:        newFakeBoardRepo(),
		columns:       newFakeColumnRepo(),
		cards:         newFakeCardRepo(),
		tags:          newFakeTagRepo(),
		notifications: newFakeNotificationRepo(),
	}
	f.svc = NewCardService(f.cards, f.columns, f.tags, f.boards, f.notifications)
	f.board = seedBoard(t, f.boards, 1, grants...)
	col, err := f.columns.Create(context.Background(), dom.Column{BoardID: f.board.ID, Name: "Todo", Position: 0})
	if err != nil {
		t.Fatalf("seed column: %v", err)
	}
	f.column = col
	return f
}

func TestCardService_CreateDefaultsAndCreatorStamp(t *testing.T) {
	f := newCardFixture(t)

	card, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID,
		Title:    "write docs",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if card.Priority != dom.PriorityMedium {
		t.Errorf("priority = %q, want M", card.Priority)
	}
	if card.Category != dom.CategoryBacklog {
		t.Errorf("category = %q, want backlog", card.Category)
	}
	if card.UserID != 1 {
		t.Errorf("creator = %d, want principal", card.UserID)
	}
	if card.Position != nil {
		t.Error("position should stay nil when omitted")
	}
}

func TestCardService_DueBeforeStartRejected(t *testing.T) {
	f := newCardFixture(t)
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := start.Add(-24 * time.Hour)

	_, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID:  f.column.ID,
		Title:     "deadline mixup",
		StartDate: &start,
		DueDate:   &due,
	})
	if !errors.Is(err, ErrDueBeforeStart) {
		t.Fatalf("got %v, want ErrDueBeforeStart", err)
	}
}

func TestCardService_PositionConflictOnlyWithinColumn(t *testing.T) {
	f := newCardFixture(t)
	otherCol, _ := f.columns.Create(context.Background(), dom.Column{BoardID: f.board.ID, Name: "Doing", Position: 1})

	pos := 0
	if _, err := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: f.column.ID, Title: "a", Position: &pos}); err != nil {
		t.Fatalf("first card: %v", err)
	}
	_, err := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: f.column.ID, Title: "b", Position: &pos})
	if !errors.Is(err, position.ErrConflict) {
		t.Fatalf("same slot same column: got %v, want ErrConflict", err)
	}
	if _, err := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: otherCol.ID, Title: "b", Position: &pos}); err != nil {
		t.Fatalf("same slot other column: %v", err)
	}
}

func TestCardService_AssigneeMustHaveBoardAccess(t *testing.T) {
	f := newCardFixture(t, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})

	outsider := int64(99)
	_, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "x", AssignedUserID: &outsider,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("outsider assignee: got %v, want ErrValidation", err)
	}

	collaborator := int64(2)
	if _, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "x", AssignedUserID: &collaborator,
	}); err != nil {
		t.Fatalf("collaborator assignee: %v", err)
	}
	owner := int64(1)
	if _, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "y", AssignedUserID: &owner,
	}); err != nil {
		t.Fatalf("owner assignee: %v", err)
	}
}

func TestCardService_MoveClearsPositionAndNotifiesAssignee(t *testing.T) {
	f := newCardFixture(t, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})
	dest, _ := f.columns.Create(context.Background(), dom.Column{BoardID: f.board.ID, Name: "Doing", Position: 1})

	assignee := int64(2)
	pos := 3
	card, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "move me", Position: &pos, AssignedUserID: &assignee,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := f.svc.Update(context.Background(), principal(1), card.ID, CardInput{ColumnID: &dest.ID})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if out.ColumnID != dest.ID {
		t.Fatalf("column = %d, want %d", out.ColumnID, dest.ID)
	}
	if out.Position != nil {
		t.Fatal("move without explicit slot must land unplaced")
	}

	list, _ := f.notifications.ListByUser(context.Background(), assignee, false)
	if len(list) != 1 || list[0].Type != dom.NotificationCardMoved {
		t.Fatalf("want one card_moved notification for the assignee, got %+v", list)
	}
}

func TestCardService_MoveNeedsEditOnDestination(t *testing.T) {
	f := newCardFixture(t)
	// Destination column on a different board the principal cannot touch.
	otherBoard := seedBoard(t, f.boards, 50)
	foreignCol, _ := f.columns.Create(context.Background(), dom.Column{BoardID: otherBoard.ID, Name: "Todo", Position: 0})

	card, _ := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: f.column.ID, Title: "stuck"})
	_, err := f.svc.Update(context.Background(), principal(1), card.ID, CardInput{ColumnID: &foreignCol.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound for unrelated destination board", err)
	}
}

func TestCardService_CreatorPreservedOnUpdate(t *testing.T) {
	f := newCardFixture(t, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})

	card, _ := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: f.column.ID, Title: "owned"})
	title := "edited by collaborator"
	out, err := f.svc.Update(context.Background(), principal(2), card.ID, CardInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.UserID != 1 {
		t.Fatalf("creator = %d, want original creator 1", out.UserID)
	}
}

func TestCardService_TagAttachDetach(t *testing.T) {
	f := newCardFixture(t)
	tag, _ := f.tags.Create(context.Background(), dom.Tag{Name: "bug", Color: "#FF0000"})
	card, _ := f.svc.Create(context.Background(), principal(1), dom.Card{ColumnID: f.column.ID, Title: "tagged"})

	if err := f.svc.AttachTag(context.Background(), principal(1), card.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown tag: got %v, want ErrNotFound", err)
	}
	if err := f.svc.AttachTag(context.Background(), principal(1), card.ID, tag.ID); err != nil {
		t.Fatalf("attach: %v", err)
	}
	// Attaching twice is a no-op.
	if err := f.svc.AttachTag(context.Background(), principal(1), card.ID, tag.ID); err != nil {
		t.Fatalf("re-attach: %v", err)
	}
	tags, _ := f.svc.ListTags(context.Background(), principal(1), card.ID)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if err := f.svc.DetachTag(context.Background(), principal(1), card.ID, tag.ID); err != nil {
		t.Fatalf("detach: %v", err)
	}
}

func TestCardService_InvalidEnumsRejected(t *testing.T) {
	f := newCardFixture(t)

	_, err := f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "x", Priority: "urgent",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("bad priority: got %v, want ErrValidation", err)
	}
	_, err = f.svc.Create(context.Background(), principal(1), dom.Card{
		ColumnID: f.column.ID, Title: "x", Category: "archived",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("bad category: got %v, want ErrValidation", err)
	}
}
