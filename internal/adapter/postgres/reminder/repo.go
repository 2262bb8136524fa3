// Package reminder implements the PracticeReminder repository using PostgreSQL.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides practice reminder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reminderColumns = `id, user_id, technique, frequency, next_send_at, enabled, created_at, updated_at`

const createSQL = `
INSERT INTO practice_reminders (id, user_id, technique, frequency, next_send_at, enabled, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, TRUE, now(), now())
RETURNING ` + reminderColumns

const listByUserSQL = `
SELECT ` + reminderColumns + `
FROM practice_reminders
WHERE user_id = $1
ORDER BY created_at`

const updateSQL = `
UPDATE practice_reminders
SET frequency = $3, enabled = $4, next_send_at = $5, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + reminderColumns

const deleteSQL = `
DELETE FROM practice_reminders
WHERE id = $1 AND user_id = $2`

// dueSQL locks due rows with SKIP LOCKED so concurrent workers never
// double-send.
const dueSQL = `
SELECT ` + reminderColumns + `
FROM practice_reminders
WHERE enabled AND next_send_at <= $1
ORDER BY next_send_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

const markSentSQL = `
UPDATE practice_reminders
SET next_send_at = $2, updated_at = now()
WHERE id = $1`

// Create inserts a new reminder.
func (r *Repo) Create(ctx context.Context, rem *domain.PracticeReminder) (*domain.PracticeReminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if rem.ID == uuid.Nil {
		rem.ID = uuid.New()
	}
	created, err := scanReminder(q.QueryRow(ctx, createSQL,
		rem.ID, rem.UserID, rem.Technique.String(), string(rem.Frequency), rem.NextSendAt))
	if err != nil {
		return nil, postgres.MapError(err, "practice_reminder", rem.UserID)
	}
	return created, nil
}

// ListByUser returns all reminders of a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PracticeReminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "practice_reminder", userID)
	}
	return scanReminders(rows)
}

// Update changes frequency, enabled state and schedule of a reminder.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, frequency domain.ReminderFrequency, enabled bool, nextSendAt time.Time) (*domain.PracticeReminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rem, err := scanReminder(q.QueryRow(ctx, updateSQL, id, userID, string(frequency), enabled, nextSendAt))
	if err != nil {
		return nil, postgres.MapError(err, "practice_reminder", id)
	}
	return rem, nil
}

// Delete removes a reminder.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "practice_reminder", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("practice_reminder %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Due returns up to limit reminders due at now, locking them for the
// calling transaction. Must be called inside TxManager.RunInTx.
func (r *Repo) Due(ctx context.Context, now time.Time, limit int) ([]domain.PracticeReminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, dueSQL, now, limit)
	if err != nil {
		return nil, postgres.MapError(err, "practice_reminder", "due")
	}
	return scanReminders(rows)
}

// MarkSent advances a reminder's schedule after a successful send.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, nextSendAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, markSentSQL, id, nextSendAt); err != nil {
		return postgres.MapError(err, "practice_reminder", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (*domain.PracticeReminder, error) {
	var rem domain.PracticeReminder
	var technique, frequency string
	err := row.Scan(&rem.ID, &rem.UserID, &technique, &frequency,
		&rem.NextSendAt, &rem.Enabled, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rem.Technique = domain.TechniqueID(technique)
	rem.Frequency = domain.ReminderFrequency(frequency)
	return &rem, nil
}

func scanReminders(rows pgx.Rows) ([]domain.PracticeReminder, error) {
	defer rows.Close()

	var out []domain.PracticeReminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rem)
	}
	return out, rows.Err()
}
