package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP codes;
// anything else is a 500.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	// ErrValidation wraps field-level problems; the wrapped message names the
	// rejected field and reason.
	ErrValidation = errors.New("validation failed")
	// ErrDueBeforeStart is the temporal invariant on cards.
	ErrDueBeforeStart = errors.New("due_date must not be before start_date")

	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already taken")
	ErrTagNameTaken       = errors.New("tag name already taken")
	ErrCollaboratorExists = errors.New("user is already a collaborator on this board")
	ErrOwnerAsCollaborator = errors.New("board owner cannot be added as a collaborator")
)
