// Package stats implements the TechniqueUsage repository using PostgreSQL.
package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides technique usage stats backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// incrementSQL is a single upsert so concurrent messages in the same
// session cannot lose counts.
const incrementSQL = `
INSERT INTO technique_usage (id, session_id, technique, used_count, rating_sum, rating_count)
VALUES ($1, $2, $3, 1, 0, 0)
ON CONFLICT (session_id, technique) DO UPDATE SET
	used_count = technique_usage.used_count + 1`

const addRatingSQL = `
UPDATE technique_usage
SET rating_sum = rating_sum + $3, rating_count = rating_count + 1
WHERE session_id = $1 AND technique = $2`

const listBySessionSQL = `
SELECT id, session_id, technique, used_count, rating_sum, rating_count
FROM technique_usage
WHERE session_id = $1
ORDER BY used_count DESC`

// IncrementUsage bumps the per-session counter for a technique,
// creating the row on first use.
func (r *Repo) IncrementUsage(ctx context.Context, sessionID string, technique domain.TechniqueID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, incrementSQL, uuid.New(), sessionID, technique.String())
	if err != nil {
		return postgres.MapError(err, "technique_usage", sessionID)
	}
	return nil
}

// AddRating records a user rating (1..5) for a technique in a session.
func (r *Repo) AddRating(ctx context.Context, sessionID string, technique domain.TechniqueID, rating int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addRatingSQL, sessionID, technique.String(), rating)
	if err != nil {
		return postgres.MapError(err, "technique_usage", sessionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("technique_usage %s/%s: %w", sessionID, technique, domain.ErrNotFound)
	}
	return nil
}

// ListBySession returns usage stats for one session, most used first.
func (r *Repo) ListBySession(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "technique_usage", sessionID)
	}
	defer rows.Close()

	var out []domain.TechniqueUsage
	for rows.Next() {
		var u domain.TechniqueUsage
		var technique string
		if err := rows.Scan(&u.ID, &u.SessionID, &technique, &u.Count, &u.RatingSum, &u.RatingCount); err != nil {
			return nil, postgres.MapError(err, "technique_usage", sessionID)
		}
		u.Technique = domain.TechniqueID(technique)
		out = append(out, u)
	}
	return out, rows.Err()
}
