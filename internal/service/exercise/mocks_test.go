package exercise

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ exerciseRepo = &exerciseRepoMock{}

type exerciseRepoMock struct {
	ListFunc               func(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error)
	GetFunc                func(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	GetProgressFunc        func(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseProgress, error)
	UpsertProgressFunc     func(ctx context.Context, p *domain.ExerciseProgress) error
	ListProgressByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseProgress, error)

	calls struct {
		UpsertProgress []struct {
			Ctx context.Context
			P   *domain.ExerciseProgress
		}
	}
	lockUpsertProgress sync.RWMutex
}

func (mock *exerciseRepoMock) List(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error) {
	if mock.ListFunc == nil {
		panic("exerciseRepoMock.ListFunc: method is nil but exerciseRepo.List was just called")
	}
	return mock.ListFunc(ctx, technique)
}

func (mock *exerciseRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	if mock.GetFunc == nil {
		panic("exerciseRepoMock.GetFunc: method is nil but exerciseRepo.Get was just called")
	}
	return mock.GetFunc(ctx, id)
}

func (mock *exerciseRepoMock) GetProgress(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseProgress, error) {
	if mock.GetProgressFunc == nil {
		panic("exerciseRepoMock.GetProgressFunc: method is nil but exerciseRepo.GetProgress was just called")
	}
	return mock.GetProgressFunc(ctx, userID, exerciseID)
}

func (mock *exerciseRepoMock) UpsertProgress(ctx context.Context, p *domain.ExerciseProgress) error {
	if mock.UpsertProgressFunc == nil {
		panic("exerciseRepoMock.UpsertProgressFunc: method is nil but exerciseRepo.UpsertProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.ExerciseProgress
	}{Ctx: ctx, P: p}
	mock.lockUpsertProgress.Lock()
	mock.calls.UpsertProgress = append(mock.calls.UpsertProgress, callInfo)
	mock.lockUpsertProgress.Unlock()
	return mock.UpsertProgressFunc(ctx, p)
}

func (mock *exerciseRepoMock) UpsertProgressCalls() []struct {
	Ctx context.Context
	P   *domain.ExerciseProgress
} {
	mock.lockUpsertProgress.RLock()
	calls := mock.calls.UpsertProgress
	mock.lockUpsertProgress.RUnlock()
	return calls
}

func (mock *exerciseRepoMock) ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseProgress, error) {
	if mock.ListProgressByUserFunc == nil {
		panic("exerciseRepoMock.ListProgressByUserFunc: method is nil but exerciseRepo.ListProgressByUser was just called")
	}
	return mock.ListProgressByUserFunc(ctx, userID)
}

var _ quotaChecker = &quotaCheckerMock{}

type quotaCheckerMock struct {
	CheckAndConsumeFunc func(ctx context.Context, category domain.QuotaCategory) error

	calls struct {
		CheckAndConsume []struct {
			Ctx      context.Context
			Category domain.QuotaCategory
		}
	}
	lockCheckAndConsume sync.RWMutex
}

func (mock *quotaCheckerMock) CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error {
	if mock.CheckAndConsumeFunc == nil {
		panic("quotaCheckerMock.CheckAndConsumeFunc: method is nil but quotaChecker.CheckAndConsume was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.QuotaCategory
	}{Ctx: ctx, Category: category}
	mock.lockCheckAndConsume.Lock()
	mock.calls.CheckAndConsume = append(mock.calls.CheckAndConsume, callInfo)
	mock.lockCheckAndConsume.Unlock()
	return mock.CheckAndConsumeFunc(ctx, category)
}

func (mock *quotaCheckerMock) CheckAndConsumeCalls() []struct {
	Ctx      context.Context
	Category domain.QuotaCategory
} {
	mock.lockCheckAndConsume.RLock()
	calls := mock.calls.CheckAndConsume
	mock.lockCheckAndConsume.RUnlock()
	return calls
}
