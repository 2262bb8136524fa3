package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// Start begins an exercise for the caller, consuming one unit of the
// exercises quota. Re-entering an unfinished exercise resumes it without
// another quota charge; starting a completed one resets it and charges
// again.
func (s *Service) Start(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if exerciseID == uuid.Nil {
		return nil, domain.NewValidationError("exercise_id", "required")
	}

	if _, err := s.exercises.Get(ctx, exerciseID); err != nil {
		return nil, fmt.Errorf("exercise.Start get: %w", err)
	}

	progress, err := s.exercises.GetProgress(ctx, userID, exerciseID)
	switch {
	case err == nil && !progress.Completed:
		return progress, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("exercise.Start get progress: %w", err)
	}

	if err := s.quota.CheckAndConsume(ctx, domain.QuotaExercises); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := &domain.ExerciseProgress{
		ID:          uuid.New(),
		UserID:      userID,
		ExerciseID:  exerciseID,
		CurrentStep: 0,
		StartedAt:   now,
		UpdatedAt:   now,
	}
	if progress != nil {
		// restart keeps the original row id
		fresh.ID = progress.ID
		fresh.StartedAt = now
	}
	if err := s.exercises.UpsertProgress(ctx, fresh); err != nil {
		return nil, fmt.Errorf("exercise.Start save progress: %w", err)
	}

	s.log.InfoContext(ctx, "exercise started", slog.String("exercise_id", exerciseID.String()))
	return fresh, nil
}

// Advance moves the caller one step forward; finishing the last step
// completes the exercise.
func (s *Service) Advance(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if exerciseID == uuid.Nil {
		return nil, domain.NewValidationError("exercise_id", "required")
	}

	ex, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Advance get: %w", err)
	}
	progress, err := s.exercises.GetProgress(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Advance get progress: %w", err)
	}
	if progress.Completed {
		return nil, fmt.Errorf("exercise.Advance: already completed: %w", domain.ErrConflict)
	}

	now := time.Now().UTC()
	progress.UpdatedAt = now
	progress.CurrentStep++
	if progress.CurrentStep >= len(ex.Steps) {
		progress.CurrentStep = len(ex.Steps) - 1
		progress.Completed = true
		progress.CompletedAt = &now
	}
	if err := s.exercises.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("exercise.Advance save progress: %w", err)
	}
	return progress, nil
}

// Complete marks the exercise finished regardless of the current step.
func (s *Service) Complete(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if exerciseID == uuid.Nil {
		return nil, domain.NewValidationError("exercise_id", "required")
	}

	progress, err := s.exercises.GetProgress(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Complete get progress: %w", err)
	}
	if progress.Completed {
		return progress, nil
	}

	now := time.Now().UTC()
	progress.Completed = true
	progress.CompletedAt = &now
	progress.UpdatedAt = now
	if err := s.exercises.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("exercise.Complete save progress: %w", err)
	}

	s.log.InfoContext(ctx, "exercise completed", slog.String("exercise_id", exerciseID.String()))
	return progress, nil
}
