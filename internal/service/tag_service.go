package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/repo"
	"github.com/ClarkAshida/Kanban-API/internal/utils"

	"github.com/jackc/pgx/v5"
)

// TagService handles the global tag catalog. Tags are not board-scoped, so
// any authenticated user may manage them.
type TagService struct {
	repo repo.TagRepo
}

// NewTagService returns a new TagService.
func NewTagService(r repo.TagRepo) *TagService {
	return &TagService{repo: r}
}

// Create stores a tag. Name is unique system-wide; color must be #RRGGBB.
func (s *TagService) Create(ctx context.Context, name, color string) (dom.Tag, error) {
	t := dom.Tag{Name: strings.TrimSpace(name), Color: color}
	if err := validateTag(t); err != nil {
		return dom.Tag{}, err
	}
	out, err := s.repo.Create(ctx, t)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Tag{}, ErrTagNameTaken
		}
		return dom.Tag{}, err
	}
	return out, nil
}

// Get returns a tag by ID.
func (s *TagService) Get(ctx context.Context, id int64) (dom.Tag, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Tag{}, ErrNotFound
		}
		return dom.Tag{}, err
	}
	return t, nil
}

// List returns all tags ordered by name.
func (s *TagService) List(ctx context.Context) ([]dom.Tag, error) {
	return s.repo.List(ctx)
}

// Update changes name and/or color.
func (s *TagService) Update(ctx context.Context, id int64, name, color *string) (dom.Tag, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return dom.Tag{}, err
	}
	patch := existing
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
	}
	if color != nil {
		patch.Color = *color
	}
	if err := validateTag(patch); err != nil {
		return dom.Tag{}, err
	}
	out, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Tag{}, ErrTagNameTaken
		}
		return dom.Tag{}, err
	}
	return out, nil
}

// Delete removes a tag; its card links cascade.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateTag(t dom.Tag) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if !dom.ValidHexColor(t.Color) {
		return fmt.Errorf("%w: color must match #RRGGBB", ErrValidation)
	}
	return nil
}
