package domain

import (
	"regexp"
	"time"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHexColor reports whether s is a "#RRGGBB" color string.
func ValidHexColor(s string) bool { return hexColorRe.MatchString(s) }

// Tag has a system-wide unique name and is attached to cards many-to-many.
type Tag struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
