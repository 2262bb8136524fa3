package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseDifficulty grades an exercise for journey ordering.
type ExerciseDifficulty string

const (
	DifficultyBeginner     ExerciseDifficulty = "beginner"
	DifficultyIntermediate ExerciseDifficulty = "intermediate"
	DifficultyAdvanced     ExerciseDifficulty = "advanced"
)

// Exercise is a guided practice unit for one technique. Rows are seeded by
// migration; Steps holds the ordered instructions.
type Exercise struct {
	ID            uuid.UUID
	Technique     TechniqueID
	Title         string
	Description   string
	Steps         []string
	Difficulty    ExerciseDifficulty
	EstimatedMins int
	CreatedAt     time.Time
}

// ExerciseProgress tracks one user working through one exercise.
// CurrentStep is a zero-based index into Exercise.Steps.
type ExerciseProgress struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ExerciseID  uuid.UUID
	CurrentStep int
	Completed   bool
	StartedAt   time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// ReminderFrequency is how often a practice reminder fires.
type ReminderFrequency string

const (
	ReminderDaily   ReminderFrequency = "daily"
	ReminderWeekly  ReminderFrequency = "weekly"
	ReminderMonthly ReminderFrequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f ReminderFrequency) Valid() bool {
	switch f {
	case ReminderDaily, ReminderWeekly, ReminderMonthly:
		return true
	}
	return false
}

// Interval returns the duration between reminder sends. Monthly uses 30
// days; calendar-exact months are not worth the complexity for coaching
// nudges.
func (f ReminderFrequency) Interval() time.Duration {
	switch f {
	case ReminderWeekly:
		return 7 * 24 * time.Hour
	case ReminderMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// PracticeReminder schedules recurring practice emails for one technique.
type PracticeReminder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Technique  TechniqueID
	Frequency  ReminderFrequency
	NextSendAt time.Time
	Enabled    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
