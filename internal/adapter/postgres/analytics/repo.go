// Package analytics implements the dashboard aggregate queries using
// PostgreSQL. Queries take optional date-range filters, so they are built
// dynamically with squirrel instead of SQL constants.
package analytics

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides read-only analytics queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Range bounds an analytics query; zero values mean unbounded.
type Range struct {
	From time.Time
	To   time.Time
}

// psql is the shared statement builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (rng Range) apply(b sq.SelectBuilder, column string) sq.SelectBuilder {
	if !rng.From.IsZero() {
		b = b.Where(sq.GtOrEq{column: rng.From})
	}
	if !rng.To.IsZero() {
		b = b.Where(sq.Lt{column: rng.To})
	}
	return b
}

// UserCounts holds headline user numbers.
type UserCounts struct {
	Total  int
	New    int // registered within the range
	Active int // sent at least one message within the range
}

// MessagesPerDay is daily chat volume.
type MessagesPerDay struct {
	Day   time.Time
	Count int
}

// TechniqueStats aggregates technique usage across sessions.
type TechniqueStats struct {
	Technique     domain.TechniqueID
	UsedCount     int
	AverageRating float64
}

// PlanCount is the subscription breakdown per plan.
type PlanCount struct {
	Plan  domain.Plan
	Count int
}

// QuotaRejections is the count of rejected consumptions per category.
type QuotaRejections struct {
	Category domain.QuotaCategory
	Count    int
}

// Users returns total/new/active user counts for the range.
func (r *Repo) Users(ctx context.Context, rng Range) (UserCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	var counts UserCounts

	sql, args, err := psql.Select("count(*)").From("users").Where(sq.Eq{"anonymized": false}).ToSql()
	if err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&counts.Total); err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}

	b := psql.Select("count(*)").From("users").Where(sq.Eq{"anonymized": false})
	sql, args, err = rng.apply(b, "created_at").ToSql()
	if err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&counts.New); err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}

	b = psql.Select("count(DISTINCT user_id)").From("chat_messages")
	sql, args, err = rng.apply(b, "created_at").ToSql()
	if err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&counts.Active); err != nil {
		return counts, postgres.MapError(err, "analytics", "users")
	}

	return counts, nil
}

// MessageVolume returns per-day message counts for the range.
func (r *Repo) MessageVolume(ctx context.Context, rng Range) ([]MessagesPerDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select("date_trunc('day', created_at) AS day", "count(*)").
		From("chat_messages").
		GroupBy("day").
		OrderBy("day")
	sql, args, err := rng.apply(b, "created_at").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "messages")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "messages")
	}
	defer rows.Close()

	var out []MessagesPerDay
	for rows.Next() {
		var m MessagesPerDay
		if err := rows.Scan(&m.Day, &m.Count); err != nil {
			return nil, postgres.MapError(err, "analytics", "messages")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// TechniqueUsage returns aggregate usage and average rating per technique.
func (r *Repo) TechniqueUsage(ctx context.Context) ([]TechniqueStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(
		"technique",
		"sum(used_count)",
		"CASE WHEN sum(rating_count) = 0 THEN 0 ELSE sum(rating_sum)::float / sum(rating_count) END",
	).
		From("technique_usage").
		GroupBy("technique").
		OrderBy("sum(used_count) DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "techniques")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "techniques")
	}
	defer rows.Close()

	var out []TechniqueStats
	for rows.Next() {
		var s TechniqueStats
		var technique string
		if err := rows.Scan(&technique, &s.UsedCount, &s.AverageRating); err != nil {
			return nil, postgres.MapError(err, "analytics", "techniques")
		}
		s.Technique = domain.TechniqueID(technique)
		out = append(out, s)
	}
	return out, rows.Err()
}

// PlanBreakdown returns how many subscriptions sit on each plan.
func (r *Repo) PlanBreakdown(ctx context.Context) ([]PlanCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("plan", "count(*)").
		From("subscriptions").
		GroupBy("plan").
		OrderBy("count(*) DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "plans")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "plans")
	}
	defer rows.Close()

	var out []PlanCount
	for rows.Next() {
		var p PlanCount
		var plan string
		if err := rows.Scan(&plan, &p.Count); err != nil {
			return nil, postgres.MapError(err, "analytics", "plans")
		}
		p.Plan = domain.Plan(plan)
		out = append(out, p)
	}
	return out, rows.Err()
}

// QuotaRejections returns rejected consumption counts per category.
func (r *Repo) QuotaRejections(ctx context.Context) ([]QuotaRejections, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("category", "sum(rejected_count)").
		From("usage_quotas").
		GroupBy("category").
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "quota")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "analytics", "quota")
	}
	defer rows.Close()

	var out []QuotaRejections
	for rows.Next() {
		var qr QuotaRejections
		var category string
		if err := rows.Scan(&category, &qr.Count); err != nil {
			return nil, postgres.MapError(err, "analytics", "quota")
		}
		qr.Category = domain.QuotaCategory(category)
		out = append(out, qr)
	}
	return out, rows.Err()
}
