// Package exercise implements the Exercise and ExerciseProgress
// repositories using PostgreSQL.
package exercise

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides exercise persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exercise repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const exerciseColumns = `id, technique, title, description, steps, difficulty, estimated_mins, created_at`

const listSQL = `
SELECT ` + exerciseColumns + `
FROM exercises
ORDER BY technique, difficulty, title`

const listByTechniqueSQL = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE technique = $1
ORDER BY difficulty, title`

const getSQL = `
SELECT ` + exerciseColumns + `
FROM exercises
WHERE id = $1`

const getProgressSQL = `
SELECT id, user_id, exercise_id, current_step, completed, started_at, completed_at, updated_at
FROM exercise_progress
WHERE user_id = $1 AND exercise_id = $2`

const upsertProgressSQL = `
INSERT INTO exercise_progress (id, user_id, exercise_id, current_step, completed, started_at, completed_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (user_id, exercise_id) DO UPDATE SET
	current_step = EXCLUDED.current_step,
	completed = EXCLUDED.completed,
	completed_at = EXCLUDED.completed_at,
	updated_at = now()`

const listProgressSQL = `
SELECT id, user_id, exercise_id, current_step, completed, started_at, completed_at, updated_at
FROM exercise_progress
WHERE user_id = $1
ORDER BY updated_at DESC`

// List returns the exercise catalog, optionally filtered by technique.
func (r *Repo) List(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows pgx.Rows
	var err error
	if technique == "" {
		rows, err = q.Query(ctx, listSQL)
	} else {
		rows, err = q.Query(ctx, listByTechniqueSQL, technique.String())
	}
	if err != nil {
		return nil, postgres.MapError(err, "exercise", technique)
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, postgres.MapError(err, "exercise", technique)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Get returns one exercise by id.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExercise(q.QueryRow(ctx, getSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "exercise", id)
	}
	return e, nil
}

// GetProgress returns the user's progress on one exercise.
func (r *Repo) GetProgress(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, getProgressSQL, userID, exerciseID))
	if err != nil {
		return nil, postgres.MapError(err, "exercise_progress", exerciseID)
	}
	return p, nil
}

// UpsertProgress inserts or updates the user's progress row.
func (r *Repo) UpsertProgress(ctx context.Context, p *domain.ExerciseProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := q.Exec(ctx, upsertProgressSQL,
		p.ID, p.UserID, p.ExerciseID, p.CurrentStep, p.Completed, p.StartedAt, p.CompletedAt)
	if err != nil {
		return postgres.MapError(err, "exercise_progress", p.ExerciseID)
	}
	return nil
}

// ListProgressByUser returns all progress rows of a user, latest first.
func (r *Repo) ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listProgressSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "exercise_progress", userID)
	}
	defer rows.Close()

	var out []domain.ExerciseProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, postgres.MapError(err, "exercise_progress", userID)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (*domain.Exercise, error) {
	var e domain.Exercise
	var technique, difficulty string
	err := row.Scan(&e.ID, &technique, &e.Title, &e.Description, &e.Steps,
		&difficulty, &e.EstimatedMins, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Technique = domain.TechniqueID(technique)
	e.Difficulty = domain.ExerciseDifficulty(difficulty)
	return &e, nil
}

func scanProgress(row rowScanner) (*domain.ExerciseProgress, error) {
	var p domain.ExerciseProgress
	err := row.Scan(&p.ID, &p.UserID, &p.ExerciseID, &p.CurrentStep,
		&p.Completed, &p.StartedAt, &p.CompletedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
