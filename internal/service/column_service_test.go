package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/position"
)

func TestColumnService_ViewerUpgradedToEditorCanCreate(t *testing.T) {
	boards := newFakeBoardRepo()
	columns := newFakeColumnRepo()
	svc := NewColumnService(columns, boards)
	b := seedBoard(t, boards, 1, dom.BoardCollaborator{UserID: 2, Role: dom.RoleView})

	_, err := svc.Create(context.Background(), principal(2), b.ID, "Doing", 0)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("viewer creating column: got %v, want ErrPermissionDenied", err)
	}

	grants, _ := boards.Grants(context.Background(), b.ID)
	if _, err := boards.UpdateCollaboratorRole(context.Background(), grants[0].ID, dom.RoleEdit); err != nil {
		t.Fatalf("upgrade role: %v", err)
	}

	col, err := svc.Create(context.Background(), principal(2), b.ID, "Doing", 0)
	if err != nil {
		t.Fatalf("editor creating column: %v", err)
	}
	if col.BoardID != b.ID || col.Position != 0 {
		t.Fatalf("got %+v", col)
	}
}

func TestColumnService_PositionConflictWithinBoard(t *testing.T) {
	boards := newFakeBoardRepo()
	columns := newFakeColumnRepo()
	svc := NewColumnService(columns, boards)
	b := seedBoard(t, boards, 1)
	b2 := seedBoard(t, boards, 1)

	if _, err := svc.Create(context.Background(), principal(1), b.ID, "Todo", 0); err != nil {
		t.Fatalf("first column: %v", err)
	}
	_, err := svc.Create(context.Background(), principal(1), b.ID, "Doing", 0)
	if !errors.Is(err, position.ErrConflict) {
		t.Fatalf("same slot same board: got %v, want ErrConflict", err)
	}
	// Same slot on another board is fine.
	if _, err := svc.Create(context.Background(), principal(1), b2.ID, "Todo", 0); err != nil {
		t.Fatalf("same slot other board: %v", err)
	}
}

func TestColumnService_UpdateKeepsOwnSlot(t *testing.T) {
	boards := newFakeBoardRepo()
	columns := newFakeColumnRepo()
	svc := NewColumnService(columns, boards)
	b := seedBoard(t, boards, 1)

	col, _ := svc.Create(context.Background(), principal(1), b.ID, "Todo", 0)
	other, _ := svc.Create(context.Background(), principal(1), b.ID, "Doing", 1)

	// Renaming without moving must not conflict with itself.
	name := "Backlog"
	if _, err := svc.Update(context.Background(), principal(1), col.ID, &name, nil); err != nil {
		t.Fatalf("rename in place: %v", err)
	}
	// Moving onto an occupied slot conflicts.
	pos := 0
	if _, err := svc.Update(context.Background(), principal(1), other.ID, nil, &pos); !errors.Is(err, position.ErrConflict) {
		t.Fatalf("move onto occupied slot: got %v, want ErrConflict", err)
	}
}

func TestColumnService_NegativePositionRejected(t *testing.T) {
	boards := newFakeBoardRepo()
	svc := NewColumnService(newFakeColumnRepo(), boards)
	b := seedBoard(t, boards, 1)

	if _, err := svc.Create(context.Background(), principal(1), b.ID, "Todo", -1); !errors.Is(err, position.ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
}

func TestColumnService_DeleteNeedsAdmin(t *testing.T) {
	boards := newFakeBoardRepo()
	columns := newFakeColumnRepo()
	svc := NewColumnService(columns, boards)
	b := seedBoard(t, boards, 1, dom.BoardCollaborator{UserID: 2, Role: dom.RoleEdit})

	col, _ := svc.Create(context.Background(), principal(1), b.ID, "Todo", 0)
	if err := svc.Delete(context.Background(), principal(2), col.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("editor deleting column: got %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(context.Background(), principal(1), col.ID); err != nil {
		t.Fatalf("owner deleting column: %v", err)
	}
}
