// Package permission decides whether a principal may act on a board.
// It is pure: inputs are snapshots, there are no repo calls and no errors.
// Callers decide whether a false answer becomes a rejected request.
package permission

import (
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
)

// Allowed reports whether userID holds at least the required role on board.
// The owner implicitly holds admin and therefore every level. Otherwise a
// collaborator grant for (board, user) with role >= required is needed.
func Allowed(board dom.Board, grants []dom.BoardCollaborator, userID int64, required dom.Role) bool {
	if board.OwnerID == userID {
		return true
	}
	need := required.Level()
	if need == 0 {
		return false
	}
	for _, g := range grants {
		if g.BoardID == board.ID && g.UserID == userID && g.Role.Level() >= need {
			return true
		}
	}
	return false
}

// Related reports whether userID has any relation to the board at all
// (owner or collaborator of any role). Used to pick between a not-found
// answer and a permission-denied answer without leaking existence.
func Related(board dom.Board, grants []dom.BoardCollaborator, userID int64) bool {
	return Allowed(board, grants, userID, dom.RoleView)
}
