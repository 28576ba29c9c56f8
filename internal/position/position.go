// Package position enforces uniqueness of the ordering index within a scope
// (columns within a board, cards within a column, tasks within a card).
// No renumbering of siblings is ever done; the caller must supply a free slot.
package position

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalid means the proposed position is negative.
	ErrInvalid = errors.New("position must be a non-negative integer")
	// ErrConflict means another live record in the scope holds the position.
	ErrConflict = errors.New("position already taken")
	// ErrRequired means the scope demands a position and none was given.
	ErrRequired = errors.New("position is required")
)

// Occupancy answers whether a position is already held inside a scope.
// Repositories implement it per entity; scopeID is the owning board, column
// or card. excludeID ignores the record being updated (0 on create).
type Occupancy interface {
	PositionTaken(ctx context.Context, scopeID int64, pos int, excludeID int64) (bool, error)
}

// Validate checks a proposed position against the scope's occupancy.
// pos == nil is allowed only when required is false (cards pending manual
// placement). The check and the subsequent write must share a transaction;
// the unique index on (scope, position) is the backstop.
func Validate(ctx context.Context, occ Occupancy, scopeID int64, pos *int, required bool, excludeID int64) error {
	if pos == nil {
		if required {
			return ErrRequired
		}
		return nil
	}
	if *pos < 0 {
		return ErrInvalid
	}
	taken, err := occ.PositionTaken(ctx, scopeID, *pos, excludeID)
	if err != nil {
		return fmt.Errorf("position check: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: position %d in scope %d", ErrConflict, *pos, scopeID)
	}
	return nil
}
