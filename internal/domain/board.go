package domain

import "time"

// Role is a collaborator's access level on a board.
// Levels form a total order: view < edit < admin.
type Role string

const (
	RoleView  Role = "view"
	RoleEdit  Role = "edit"
	RoleAdmin Role = "admin"
)

// Level returns the numeric rank of the role, 0 for unknown roles.
func (r Role) Level() int {
	switch r {
	case RoleView:
		return 1
	case RoleEdit:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r.Level() > 0 }

// Board is owned by exactly one user and shared through collaborators.
type Board struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardCollaborator grants a user a role on a board they do not own.
// Unique per (board, user).
type BoardCollaborator struct {
	ID        int64
	BoardID   int64
	UserID    int64
	Role      Role
	CreatedAt time.Time
}
