package domain

import "time"

// Domain entities: business objects only.
// No dependency on Gin, Postgres or Redis.

// User is the domain entity for an account. Identity is the unique login.
type User struct {
	ID           int64
	Login        string
	Name         string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}
