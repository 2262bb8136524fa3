// Package reminder manages practice reminders: per-user CRUD and the
// worker pass that mails due reminders and advances their schedule.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// reminderRepo defines the practice reminder repository interface needed by the service.
type reminderRepo interface {
	Create(ctx context.Context, rem *domain.PracticeReminder) (*domain.PracticeReminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PracticeReminder, error)
	Update(ctx context.Context, userID, id uuid.UUID, frequency domain.ReminderFrequency, enabled bool, nextSendAt time.Time) (*domain.PracticeReminder, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Due(ctx context.Context, now time.Time, limit int) ([]domain.PracticeReminder, error)
	MarkSent(ctx context.Context, id uuid.UUID, nextSendAt time.Time) error
}

// userRepo defines the user lookup interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// mailer defines the outbound email interface needed by the service.
type mailer interface {
	SendPracticeReminder(ctx context.Context, to, displayName, exerciseName string) error
}

// Service implements practice reminder operations.
type Service struct {
	log       *slog.Logger
	reminders reminderRepo
	users     userRepo
	tx        txManager
	mail      mailer
}

// NewService creates a new reminder service instance.
func NewService(logger *slog.Logger, reminders reminderRepo, users userRepo, tx txManager, mail mailer) *Service {
	return &Service{
		log:       logger.With("service", "reminder"),
		reminders: reminders,
		users:     users,
		tx:        tx,
		mail:      mail,
	}
}

// CreateInput holds parameters for creating a practice reminder.
type CreateInput struct {
	Technique domain.TechniqueID
	Frequency domain.ReminderFrequency
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if !i.Technique.Valid() {
		errs = append(errs, domain.FieldError{Field: "technique", Message: "unknown technique"})
	}
	if !i.Frequency.Valid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be daily, weekly or monthly"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create schedules a new practice reminder; the first send is one full
// interval out.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.PracticeReminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rem, err := s.reminders.Create(ctx, &domain.PracticeReminder{
		ID:         uuid.New(),
		UserID:     userID,
		Technique:  input.Technique,
		Frequency:  input.Frequency,
		NextSendAt: time.Now().UTC().Add(input.Frequency.Interval()),
		Enabled:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("reminder.Create: %w", err)
	}
	return rem, nil
}

// List returns the caller's practice reminders.
func (s *Service) List(ctx context.Context) ([]domain.PracticeReminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	reminders, err := s.reminders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reminder.List: %w", err)
	}
	return reminders, nil
}

// UpdateInput holds parameters for updating a practice reminder.
type UpdateInput struct {
	ID        uuid.UUID
	Frequency domain.ReminderFrequency
	Enabled   bool
}

// Update changes a reminder's frequency or enabled flag. A frequency
// change reschedules the next send from now.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.PracticeReminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.ID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if !input.Frequency.Valid() {
		return nil, domain.NewValidationError("frequency", "must be daily, weekly or monthly")
	}

	nextSendAt := time.Now().UTC().Add(input.Frequency.Interval())
	rem, err := s.reminders.Update(ctx, userID, input.ID, input.Frequency, input.Enabled, nextSendAt)
	if err != nil {
		return nil, fmt.Errorf("reminder.Update: %w", err)
	}
	return rem, nil
}

// Delete removes a reminder owned by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.reminders.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("reminder.Delete: %w", err)
	}
	return nil
}

// techniqueName renders a technique id for email copy.
func techniqueName(t domain.TechniqueID) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
