// Package emailtoken implements the EmailToken repository using PostgreSQL.
package emailtoken

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides email-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new email token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO email_tokens (id, user_id, token_hash, purpose, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

const getByHashSQL = `
SELECT id, user_id, token_hash, purpose, expires_at, consumed_at, created_at
FROM email_tokens
WHERE token_hash = $1 AND purpose = $2`

const consumeSQL = `
UPDATE email_tokens SET consumed_at = now()
WHERE id = $1 AND consumed_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM email_tokens
WHERE expires_at < now() OR consumed_at IS NOT NULL`

// Create inserts a new email token.
func (r *Repo) Create(ctx context.Context, t *domain.EmailToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := q.Exec(ctx, createSQL, t.ID, t.UserID, t.TokenHash, string(t.Purpose), t.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "email_token", t.ID)
	}
	return nil
}

// GetByHash returns a token by its hash and purpose, consumed or not.
// The service layer decides whether a consumed/expired token is an error.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string, purpose domain.EmailTokenPurpose) (*domain.EmailToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.EmailToken
	var p string
	err := q.QueryRow(ctx, getByHashSQL, tokenHash, string(purpose)).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &p, &t.ExpiresAt, &t.ConsumedAt, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "email_token", "hash")
	}
	t.Purpose = domain.EmailTokenPurpose(p)
	return &t, nil
}

// Consume marks the token as used. Returns domain.ErrConflict if it was
// already consumed, so double-submits surface cleanly.
func (r *Repo) Consume(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, consumeSQL, id)
	if err != nil {
		return postgres.MapError(err, "email_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email_token %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// DeleteExpired removes expired and consumed tokens.
// Returns the count of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, postgres.MapError(err, "email_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}
