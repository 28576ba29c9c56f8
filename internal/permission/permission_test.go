package permission

import (
	"testing"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
)

func grant(boardID, userID int64, role dom.Role) dom.BoardCollaborator {
	return dom.BoardCollaborator{BoardID: boardID, UserID: userID, Role: role}
}

// checks that the owner passes every level without a grant
func TestAllowed_OwnerImpliesEveryLevel(t *testing.T) {
	board := dom.Board{ID: 1, OwnerID: 10}
	for _, required := range []dom.Role{dom.RoleView, dom.RoleEdit, dom.RoleAdmin} {
		if !Allowed(board, nil, 10, required) {
			t.Fatalf("owner should hold %q", required)
		}
	}
}

// checks that each role passes exactly the levels at or below it
func TestAllowed_RoleOrdering(t *testing.T) {
	board := dom.Board{ID: 1, OwnerID: 10}
	cases := []struct {
		held     dom.Role
		required dom.Role
		want     bool
	}{
		{dom.RoleView, dom.RoleView, true},
		{dom.RoleView, dom.RoleEdit, false},
		{dom.RoleView, dom.RoleAdmin, false},
		{dom.RoleEdit, dom.RoleView, true},
		{dom.RoleEdit, dom.RoleEdit, true},
		{dom.RoleEdit, dom.RoleAdmin, false},
		{dom.RoleAdmin, dom.RoleView, true},
		{dom.RoleAdmin, dom.RoleEdit, true},
		{dom.RoleAdmin, dom.RoleAdmin, true},
	}
	for _, tc := range cases {
		grants := []dom.BoardCollaborator{grant(1, 20, tc.held)}
		if got := Allowed(board, grants, 20, tc.required); got != tc.want {
			t.Errorf("held=%q required=%q: got %v, want %v", tc.held, tc.required, got, tc.want)
		}
	}
}

// checks that a grant on another board does not carry over
func TestAllowed_GrantScopedToBoard(t *testing.T) {
	board := dom.Board{ID: 1, OwnerID: 10}
	grants := []dom.BoardCollaborator{grant(2, 20, dom.RoleAdmin)}
	if Allowed(board, grants, 20, dom.RoleView) {
		t.Fatal("admin on board 2 should not grant view on board 1")
	}
}

func TestAllowed_UnknownRequiredRoleNeverPasses(t *testing.T) {
	board := dom.Board{ID: 1, OwnerID: 10}
	grants := []dom.BoardCollaborator{grant(1, 20, dom.RoleAdmin)}
	if Allowed(board, grants, 20, dom.Role("manage")) {
		t.Fatal("unknown required role should never pass for non-owners")
	}
}

func TestRelated(t *testing.T) {
	board := dom.Board{ID: 1, OwnerID: 10}
	grants := []dom.BoardCollaborator{grant(1, 20, dom.RoleView)}

	if !Related(board, nil, 10) {
		t.Fatal("owner is related")
	}
	if !Related(board, grants, 20) {
		t.Fatal("view collaborator is related")
	}
	if Related(board, grants, 30) {
		t.Fatal("stranger is not related")
	}
}
