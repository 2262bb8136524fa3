// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, display_name, password_hash, email_verified, anonymized, role, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND NOT anonymized`

const createSQL = `
INSERT INTO users (id, email, display_name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const updateProfileSQL = `
UPDATE users
SET display_name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const setEmailVerifiedSQL = `
UPDATE users
SET email_verified = TRUE, updated_at = now()
WHERE id = $1`

const anonymizeSQL = `
UPDATE users
SET email = 'deleted-' || id::text || '@anonymized.invalid',
    display_name = 'Deleted User',
    password_hash = '',
    anonymized = TRUE,
    updated_at = now()
WHERE id = $1`

// GetByID returns a user by primary key. Anonymized rows are still
// returned; callers decide whether a deleted account is acceptable.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a non-anonymized user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, u.Role.String(), u.CreatedAt, u.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateProfile modifies the display name for the given user.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateProfileSQL, id, displayName))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetEmailVerified marks the user's email as verified.
func (r *Repo) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setEmailVerifiedSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Anonymize scrubs personal data in place. The row survives so that
// aggregate statistics keyed by user id remain meaningful.
func (r *Repo) Anonymize(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, anonymizeSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash,
		&u.EmailVerified, &u.Anonymized, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
