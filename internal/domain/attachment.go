package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxAttachmentSize is the upload size limit in bytes (5 MiB).
const MaxAttachmentSize = 5 * 1024 * 1024

var allowedAttachmentExts = map[string]bool{
	".jpg": true,
	".png": true,
	".pdf": true,
}

// AllowedAttachmentExt reports whether the file name carries an accepted
// extension (.jpg, .png, .pdf), case-insensitive.
func AllowedAttachmentExt(name string) bool {
	return allowedAttachmentExts[strings.ToLower(filepath.Ext(name))]
}

// Attachment is a file stored for a card. FilePath is relative to the
// configured attachment directory.
type Attachment struct {
	ID           int64
	CardID       int64
	UploadedByID int64
	FileName     string
	FilePath     string
	Size         int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
