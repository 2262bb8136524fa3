// Package quota implements the UsageQuota repository using PostgreSQL.
//
// All mutating methods are meant to run inside TxManager.RunInTx:
// GetForUpdate takes a row lock so concurrent consumers of the same
// subject serialize instead of racing the read-modify-write.
package quota

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides usage quota persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quota repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const quotaColumns = `id, subject, category, daily_count, monthly_count, rejected_count,
	daily_reset_at, monthly_reset_at, updated_at`

const getSQL = `
SELECT ` + quotaColumns + `
FROM usage_quotas
WHERE subject = $1 AND category = $2`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const insertSQL = `
INSERT INTO usage_quotas (id, subject, category, daily_count, monthly_count, rejected_count,
	daily_reset_at, monthly_reset_at, updated_at)
VALUES ($1, $2, $3, 0, 0, 0, $4, $5, now())
ON CONFLICT (subject, category) DO NOTHING`

const updateCountersSQL = `
UPDATE usage_quotas
SET daily_count = $3, monthly_count = $4, daily_reset_at = $5, monthly_reset_at = $6,
    updated_at = now()
WHERE subject = $1 AND category = $2`

const incrementRejectedSQL = `
UPDATE usage_quotas
SET rejected_count = rejected_count + 1, updated_at = now()
WHERE subject = $1 AND category = $2`

const deleteStaleSQL = `
DELETE FROM usage_quotas
WHERE updated_at < $1
  AND subject NOT IN (SELECT id::text FROM users)`

// Get returns the counter row without locking, for status displays.
func (r *Repo) Get(ctx context.Context, subject string, category domain.QuotaCategory) (*domain.UsageQuota, error) {
	return r.get(ctx, getSQL, subject, category)
}

// GetForUpdate returns the counter row under a row lock, creating a zeroed
// row first when absent. Must be called inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, subject string, category domain.QuotaCategory, now time.Time) (*domain.UsageQuota, error) {
	q, err := r.get(ctx, getForUpdateSQL, subject, category)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// Lazily create. ON CONFLICT DO NOTHING absorbs the race where another
	// transaction inserted between our SELECT and INSERT; the second SELECT
	// then blocks on their lock.
	qr := postgres.QuerierFromCtx(ctx, r.pool)
	day := startOfDayUTC(now)
	month := startOfMonthUTC(now)
	if _, err := qr.Exec(ctx, insertSQL, uuid.New(), subject, string(category), day, month); err != nil {
		return nil, postgres.MapError(err, "usage_quota", subject)
	}

	return r.get(ctx, getForUpdateSQL, subject, category)
}

// UpdateCounters writes the recomputed counters and reset anchors.
func (r *Repo) UpdateCounters(ctx context.Context, q *domain.UsageQuota) error {
	qr := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := qr.Exec(ctx, updateCountersSQL,
		q.Subject, string(q.Category), q.DailyCount, q.MonthlyCount, q.DailyResetAt, q.MonthlyResetAt)
	if err != nil {
		return postgres.MapError(err, "usage_quota", q.Subject)
	}
	return nil
}

// IncrementRejected counts a rejected consumption for analytics.
func (r *Repo) IncrementRejected(ctx context.Context, subject string, category domain.QuotaCategory) error {
	qr := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := qr.Exec(ctx, incrementRejectedSQL, subject, string(category)); err != nil {
		return postgres.MapError(err, "usage_quota", subject)
	}
	return nil
}

// DeleteStale removes anonymous counter rows untouched since before.
// Session counters accumulate forever otherwise; rows whose subject is a
// known user id are kept.
func (r *Repo) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	qr := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := qr.Exec(ctx, deleteStaleSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "usage_quota", "stale")
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) get(ctx context.Context, sql, subject string, category domain.QuotaCategory) (*domain.UsageQuota, error) {
	qr := postgres.QuerierFromCtx(ctx, r.pool)

	var q domain.UsageQuota
	var cat string
	var rejected int
	err := qr.QueryRow(ctx, sql, subject, string(category)).Scan(
		&q.ID, &q.Subject, &cat, &q.DailyCount, &q.MonthlyCount, &rejected,
		&q.DailyResetAt, &q.MonthlyResetAt, &q.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "usage_quota", subject)
	}
	q.Category = domain.QuotaCategory(cat)
	_ = rejected // tracked for analytics, not part of the domain counter
	return &q, nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonthUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
