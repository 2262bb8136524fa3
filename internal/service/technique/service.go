// Package technique implements the NLP coaching toolbox: the technique
// catalog, mood detection, technique recommendation, the meta-model
// communication analyzer and the belief-change protocol.
package technique

import (
	"context"
	"log/slog"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// statsRepo defines the technique usage stats interface needed by the service.
type statsRepo interface {
	AddRating(ctx context.Context, sessionID string, technique domain.TechniqueID, rating int) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error)
}

// quotaChecker defines the quota consumption interface needed by the service.
type quotaChecker interface {
	CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error
}

// completer defines the LLM completion interface needed by the service.
type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Service implements technique operations.
type Service struct {
	log   *slog.Logger
	stats statsRepo
	quota quotaChecker
	llm   completer
}

// NewService creates a new technique service instance.
func NewService(logger *slog.Logger, stats statsRepo, quota quotaChecker, llm completer) *Service {
	return &Service{
		log:   logger.With("service", "technique"),
		stats: stats,
		quota: quota,
		llm:   llm,
	}
}

// RateTechnique records a 1-5 rating for a technique used in a session.
// Returns ErrNotFound if the session never used the technique.
func (s *Service) RateTechnique(ctx context.Context, sessionID string, id domain.TechniqueID, rating int) error {
	if !id.Valid() {
		return domain.NewValidationError("technique", "unknown technique")
	}
	if rating < 1 || rating > 5 {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}
	if sessionID == "" {
		return domain.NewValidationError("session_id", "required")
	}

	if err := s.stats.AddRating(ctx, sessionID, id, rating); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "technique rated",
		slog.String("technique", id.String()),
		slog.Int("rating", rating))
	return nil
}

// SessionStats returns per-technique usage counters for a chat session.
func (s *Service) SessionStats(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error) {
	if sessionID == "" {
		return nil, domain.NewValidationError("session_id", "required")
	}
	return s.stats.ListBySession(ctx, sessionID)
}
