package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ reminderRepo = &reminderRepoMock{}

type reminderRepoMock struct {
	CreateFunc     func(ctx context.Context, rem *domain.PracticeReminder) (*domain.PracticeReminder, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.PracticeReminder, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, frequency domain.ReminderFrequency, enabled bool, nextSendAt time.Time) (*domain.PracticeReminder, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error
	DueFunc        func(ctx context.Context, now time.Time, limit int) ([]domain.PracticeReminder, error)
	MarkSentFunc   func(ctx context.Context, id uuid.UUID, nextSendAt time.Time) error

	calls struct {
		MarkSent []struct {
			Ctx        context.Context
			ID         uuid.UUID
			NextSendAt time.Time
		}
	}
	lockMarkSent sync.RWMutex
}

func (mock *reminderRepoMock) Create(ctx context.Context, rem *domain.PracticeReminder) (*domain.PracticeReminder, error) {
	if mock.CreateFunc == nil {
		panic("reminderRepoMock.CreateFunc: method is nil but reminderRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, rem)
}

func (mock *reminderRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PracticeReminder, error) {
	if mock.ListByUserFunc == nil {
		panic("reminderRepoMock.ListByUserFunc: method is nil but reminderRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *reminderRepoMock) Update(ctx context.Context, userID, id uuid.UUID, frequency domain.ReminderFrequency, enabled bool, nextSendAt time.Time) (*domain.PracticeReminder, error) {
	if mock.UpdateFunc == nil {
		panic("reminderRepoMock.UpdateFunc: method is nil but reminderRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, id, frequency, enabled, nextSendAt)
}

func (mock *reminderRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reminderRepoMock.DeleteFunc: method is nil but reminderRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *reminderRepoMock) Due(ctx context.Context, now time.Time, limit int) ([]domain.PracticeReminder, error) {
	if mock.DueFunc == nil {
		panic("reminderRepoMock.DueFunc: method is nil but reminderRepo.Due was just called")
	}
	return mock.DueFunc(ctx, now, limit)
}

func (mock *reminderRepoMock) MarkSent(ctx context.Context, id uuid.UUID, nextSendAt time.Time) error {
	if mock.MarkSentFunc == nil {
		panic("reminderRepoMock.MarkSentFunc: method is nil but reminderRepo.MarkSent was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		NextSendAt time.Time
	}{Ctx: ctx, ID: id, NextSendAt: nextSendAt}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, id, nextSendAt)
}

func (mock *reminderRepoMock) MarkSentCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	NextSendAt time.Time
} {
	mock.lockMarkSent.RLock()
	calls := mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendPracticeReminderFunc func(ctx context.Context, to, displayName, exerciseName string) error

	calls struct {
		SendPracticeReminder []struct {
			Ctx          context.Context
			To           string
			DisplayName  string
			ExerciseName string
		}
	}
	lockSendPracticeReminder sync.RWMutex
}

func (mock *mailerMock) SendPracticeReminder(ctx context.Context, to, displayName, exerciseName string) error {
	if mock.SendPracticeReminderFunc == nil {
		panic("mailerMock.SendPracticeReminderFunc: method is nil but mailer.SendPracticeReminder was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		To           string
		DisplayName  string
		ExerciseName string
	}{Ctx: ctx, To: to, DisplayName: displayName, ExerciseName: exerciseName}
	mock.lockSendPracticeReminder.Lock()
	mock.calls.SendPracticeReminder = append(mock.calls.SendPracticeReminder, callInfo)
	mock.lockSendPracticeReminder.Unlock()
	return mock.SendPracticeReminderFunc(ctx, to, displayName, exerciseName)
}

func (mock *mailerMock) SendPracticeReminderCalls() []struct {
	Ctx          context.Context
	To           string
	DisplayName  string
	ExerciseName string
} {
	mock.lockSendPracticeReminder.RLock()
	calls := mock.calls.SendPracticeReminder
	mock.lockSendPracticeReminder.RUnlock()
	return calls
}
