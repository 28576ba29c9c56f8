package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByLogin(ctx context.Context, login string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	Create(ctx context.Context, login, name, passwordHash string) (dom.User, error)
	UpdateProfile(ctx context.Context, id int64, name, passwordHash string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, login, name, password_hash, is_active, is_staff, is_superuser, created_at`

func scanUser(row interface{ Scan(...any) error }) (dom.User, error) {
	var u dom.User
	err := row.Scan(&u.ID, &u.Login, &u.Name, &u.PasswordHash,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt)
	return u, err
}

// GetByLogin returns the user by login.
func (r *PGUserRepo) GetByLogin(ctx context.Context, login string) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = $1`, login))
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Create inserts a new active user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, login, name, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (login, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, login, name, passwordHash))
}

// UpdateProfile updates display name and password hash.
func (r *PGUserRepo) UpdateProfile(ctx context.Context, id int64, name, passwordHash string) (dom.User, error) {
	query := `
		UPDATE users SET name = $2, password_hash = $3
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, id, name, passwordHash))
}
