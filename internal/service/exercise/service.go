// Package exercise implements guided practice: the seeded exercise
// catalog, per-user step progress and technique journeys.
package exercise

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// exerciseRepo defines the exercise repository interface needed by the service.
type exerciseRepo interface {
	List(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	GetProgress(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseProgress, error)
	UpsertProgress(ctx context.Context, p *domain.ExerciseProgress) error
	ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseProgress, error)
}

// quotaChecker defines the quota consumption interface needed by the service.
type quotaChecker interface {
	CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error
}

// Service implements exercise operations.
type Service struct {
	log       *slog.Logger
	exercises exerciseRepo
	quota     quotaChecker
}

// NewService creates a new exercise service instance.
func NewService(logger *slog.Logger, exercises exerciseRepo, quota quotaChecker) *Service {
	return &Service{
		log:       logger.With("service", "exercise"),
		exercises: exercises,
		quota:     quota,
	}
}

// List returns the exercise catalog, optionally filtered by technique.
func (s *Service) List(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error) {
	if technique != "" && !technique.Valid() {
		return nil, domain.NewValidationError("technique", "unknown technique")
	}
	exercises, err := s.exercises.List(ctx, technique)
	if err != nil {
		return nil, fmt.Errorf("exercise.List: %w", err)
	}
	return exercises, nil
}

// Get returns one exercise by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("exercise_id", "required")
	}
	ex, err := s.exercises.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("exercise.Get: %w", err)
	}
	return ex, nil
}
