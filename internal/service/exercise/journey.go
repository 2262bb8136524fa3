package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// JourneyStep pairs one exercise of a technique journey with the
// caller's progress, if any.
type JourneyStep struct {
	Exercise domain.Exercise
	Progress *domain.ExerciseProgress
}

// Journey is the ordered exercise sequence for one technique with the
// caller's completion state.
type Journey struct {
	Technique       domain.TechniqueID
	Steps           []JourneyStep
	Completed       int
	PercentComplete int
}

// Journey returns the exercise sequence for a technique, ordered by
// difficulty, annotated with the caller's progress.
func (s *Service) Journey(ctx context.Context, technique domain.TechniqueID) (*Journey, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !technique.Valid() {
		return nil, domain.NewValidationError("technique", "unknown technique")
	}

	exercises, err := s.exercises.List(ctx, technique)
	if err != nil {
		return nil, fmt.Errorf("exercise.Journey list: %w", err)
	}
	progress, err := s.exercises.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Journey list progress: %w", err)
	}

	byExercise := make(map[uuid.UUID]*domain.ExerciseProgress, len(progress))
	for i := range progress {
		byExercise[progress[i].ExerciseID] = &progress[i]
	}

	journey := &Journey{
		Technique: technique,
		Steps:     make([]JourneyStep, 0, len(exercises)),
	}
	for _, ex := range exercises {
		step := JourneyStep{Exercise: ex, Progress: byExercise[ex.ID]}
		if step.Progress != nil && step.Progress.Completed {
			journey.Completed++
		}
		journey.Steps = append(journey.Steps, step)
	}
	if len(journey.Steps) > 0 {
		journey.PercentComplete = journey.Completed * 100 / len(journey.Steps)
	}
	return journey, nil
}
