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
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, credential checks and profile updates.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// ValidateCredentials checks login and password; returns the user if valid.
// Inactive accounts fail the same way as wrong passwords.
func (s *UserService) ValidateCredentials(ctx context.Context, login, password string) (dom.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !u.IsActive {
		return dom.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, login, name, password string) (dom.User, error) {
	login = strings.TrimSpace(login)
	name = strings.TrimSpace(name)
	if login == "" || name == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, login, name, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrLoginTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// GetByID returns the user.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdateProfile changes the user's own display name and/or password.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, password *string) (dom.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return dom.User{}, err
	}
	newName := u.Name
	if name != nil {
		newName = strings.TrimSpace(*name)
		if newName == "" {
			return dom.User{}, fmt.Errorf("%w: name must not be blank", ErrValidation)
		}
	}
	newHash := u.PasswordHash
	if password != nil {
		if *password == "" {
			return dom.User{}, fmt.Errorf("%w: password must not be blank", ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return dom.User{}, err
		}
		newHash = string(hash)
	}
	return s.repo.UpdateProfile(ctx, id, newName, newHash)
}
