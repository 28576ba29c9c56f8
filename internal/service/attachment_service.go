package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/permission"
	"github.com/ClarkAshida/Kanban-API/internal/repo"

	"github.com/jackc/pgx/v5"
)

// AttachmentService guards card attachments. File bytes live under dir;
// the repo keeps metadata with a relative path.
type AttachmentService struct {
	repo   repo.AttachmentRepo
	boards repo.BoardRepo
	guard  cardGuard
	dir    string
}

// NewAttachmentService returns a new AttachmentService.
func NewAttachmentService(r repo.AttachmentRepo, cards repo.CardRepo, columns repo.ColumnRepo, boards repo.BoardRepo, dir string) *AttachmentService {
	return &AttachmentService{
		repo: r, boards: boards, dir: dir,
		guard: cardGuard{cards: cards, columns: columns, guard: boardGuard{boards: boards}},
	}
}

// Upload stores a file for a card; requires edit on the board. Size is
// capped at 5 MiB and only .jpg, .png and .pdf are accepted. The size check
// is enforced again while copying, so a lying Content-Length cannot bypass it.
func (s *AttachmentService) Upload(ctx context.Context, p auth.Principal, cardID int64, fileName string, size int64, src io.Reader) (dom.Attachment, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleEdit)
	if err != nil {
		return dom.Attachment{}, err
	}
	if fileName == "" {
		return dom.Attachment{}, fmt.Errorf("%w: file name must not be blank", ErrValidation)
	}
	if !dom.AllowedAttachmentExt(fileName) {
		return dom.Attachment{}, fmt.Errorf("%w: file type not allowed, use .jpg, .png or .pdf", ErrValidation)
	}
	if size > dom.MaxAttachmentSize {
		return dom.Attachment{}, fmt.Errorf("%w: file exceeds 5 MiB limit", ErrValidation)
	}

	relPath, err := s.writeFile(card.ID, fileName, src)
	if err != nil {
		return dom.Attachment{}, err
	}
	out, err := s.repo.Create(ctx, dom.Attachment{
		CardID:       card.ID,
		UploadedByID: p.UserID,
		FileName:     filepath.Base(fileName),
		FilePath:     relPath,
		Size:         size,
	})
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, relPath))
		return dom.Attachment{}, err
	}
	return out, nil
}

// ListByCard returns a card's attachments; requires view.
func (s *AttachmentService) ListByCard(ctx context.Context, p auth.Principal, cardID int64) ([]dom.Attachment, error) {
	card, _, err := s.guard.requireCard(ctx, p, cardID, dom.RoleView)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCard(ctx, card.ID)
}

// FilePathFor returns the absolute path of an attachment the principal may
// view, for streaming back to the client.
func (s *AttachmentService) FilePathFor(ctx context.Context, p auth.Principal, id int64) (dom.Attachment, string, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return dom.Attachment{}, "", err
	}
	if _, _, err := s.guard.requireCard(ctx, p, a.CardID, dom.RoleView); err != nil {
		return dom.Attachment{}, "", err
	}
	return a, filepath.Join(s.dir, a.FilePath), nil
}

// Delete removes an attachment. The uploader may delete their own; otherwise
// admin on the board is required. The file is removed after the row.
func (s *AttachmentService) Delete(ctx context.Context, p auth.Principal, id int64) error {
	a, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	_, board, err := s.guard.requireCard(ctx, p, a.CardID, dom.RoleView)
	if err != nil {
		return err
	}
	if a.UploadedByID != p.UserID && !p.IsSuperuser {
		grants, err := s.boards.Grants(ctx, board.ID)
		if err != nil {
			return err
		}
		if !permission.Allowed(board, grants, p.UserID, dom.RoleAdmin) {
			return ErrPermissionDenied
		}
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}
	_ = os.Remove(filepath.Join(s.dir, a.FilePath))
	return nil
}

func (s *AttachmentService) load(ctx context.Context, id int64) (dom.Attachment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Attachment{}, ErrNotFound
		}
		return dom.Attachment{}, err
	}
	return a, nil
}

// writeFile copies src into dir/card_<id>/<random>_<name>, capping the copy
// at the size limit.
func (s *AttachmentService) writeFile(cardID int64, fileName string, src io.Reader) (string, error) {
	sub := fmt.Sprintf("card_%d", cardID)
	if err := os.MkdirAll(filepath.Join(s.dir, sub), 0o755); err != nil {
		return "", fmt.Errorf("attachment dir: %w", err)
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	relPath := filepath.Join(sub, hex.EncodeToString(buf)+"_"+filepath.Base(fileName))
	dst, err := os.Create(filepath.Join(s.dir, relPath))
	if err != nil {
		return "", fmt.Errorf("attachment file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, io.LimitReader(src, dom.MaxAttachmentSize+1))
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, relPath))
		return "", fmt.Errorf("attachment write: %w", err)
	}
	if n > dom.MaxAttachmentSize {
		_ = os.Remove(filepath.Join(s.dir, relPath))
		return "", fmt.Errorf("%w: file exceeds 5 MiB limit", ErrValidation)
	}
	return relPath, nil
}
