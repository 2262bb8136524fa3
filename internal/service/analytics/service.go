// Package analytics assembles the admin dashboard from the aggregate
// queries: user counts, message volume, technique usage, plan breakdown
// and quota rejections.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	repo "github.com/jahboukie/inner-architect/internal/adapter/postgres/analytics"
	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// analyticsRepo defines the aggregate query interface needed by the service.
type analyticsRepo interface {
	Users(ctx context.Context, rng repo.Range) (repo.UserCounts, error)
	MessageVolume(ctx context.Context, rng repo.Range) ([]repo.MessagesPerDay, error)
	TechniqueUsage(ctx context.Context) ([]repo.TechniqueStats, error)
	PlanBreakdown(ctx context.Context) ([]repo.PlanCount, error)
	QuotaRejections(ctx context.Context) ([]repo.QuotaRejections, error)
}

// Service implements the analytics dashboard.
type Service struct {
	log  *slog.Logger
	repo analyticsRepo
}

// NewService creates a new analytics service instance.
func NewService(logger *slog.Logger, r analyticsRepo) *Service {
	return &Service{
		log:  logger.With("service", "analytics"),
		repo: r,
	}
}

// Dashboard is the full admin analytics view.
type Dashboard struct {
	Range           repo.Range
	Users           repo.UserCounts
	MessageVolume   []repo.MessagesPerDay
	TechniqueUsage  []repo.TechniqueStats
	PlanBreakdown   []repo.PlanCount
	QuotaRejections []repo.QuotaRejections
}

// defaultWindow bounds the dashboard when no range is given.
const defaultWindow = 30 * 24 * time.Hour

// Dashboard runs the aggregate queries for the admin dashboard. Zero
// from/to default to the last thirty days.
func (s *Service) Dashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	if !from.Before(to) {
		return nil, domain.NewValidationError("from", "must be before to")
	}
	rng := repo.Range{From: from, To: to}

	users, err := s.repo.Users(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard users: %w", err)
	}
	volume, err := s.repo.MessageVolume(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard message volume: %w", err)
	}
	techniques, err := s.repo.TechniqueUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard technique usage: %w", err)
	}
	plans, err := s.repo.PlanBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard plan breakdown: %w", err)
	}
	rejections, err := s.repo.QuotaRejections(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard quota rejections: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard assembled",
		slog.Time("from", from), slog.Time("to", to))

	return &Dashboard{
		Range:           rng,
		Users:           users,
		MessageVolume:   volume,
		TechniqueUsage:  techniques,
		PlanBreakdown:   plans,
		QuotaRejections: rejections,
	}, nil
}
