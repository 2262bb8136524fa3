package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ quotaRepo = &quotaRepoMock{}

type quotaRepoMock struct {
	GetFunc               func(ctx context.Context, subject string, category domain.QuotaCategory) (*domain.UsageQuota, error)
	GetForUpdateFunc      func(ctx context.Context, subject string, category domain.QuotaCategory, now time.Time) (*domain.UsageQuota, error)
	UpdateCountersFunc    func(ctx context.Context, q *domain.UsageQuota) error
	IncrementRejectedFunc func(ctx context.Context, subject string, category domain.QuotaCategory) error
	DeleteStaleFunc       func(ctx context.Context, before time.Time) (int, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			Subject  string
			Category domain.QuotaCategory
		}
		GetForUpdate []struct {
			Ctx      context.Context
			Subject  string
			Category domain.QuotaCategory
			Now      time.Time
		}
		UpdateCounters []struct {
			Ctx context.Context
			Q   *domain.UsageQuota
		}
		IncrementRejected []struct {
			Ctx      context.Context
			Subject  string
			Category domain.QuotaCategory
		}
		DeleteStale []struct {
			Ctx    context.Context
			Before time.Time
		}
	}
	lockGet               sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockUpdateCounters    sync.RWMutex
	lockIncrementRejected sync.RWMutex
	lockDeleteStale       sync.RWMutex
}

func (mock *quotaRepoMock) Get(ctx context.Context, subject string, category domain.QuotaCategory) (*domain.UsageQuota, error) {
	if mock.GetFunc == nil {
		panic("quotaRepoMock.GetFunc: method is nil but quotaRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Subject  string
		Category domain.QuotaCategory
	}{Ctx: ctx, Subject: subject, Category: category}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, subject, category)
}

func (mock *quotaRepoMock) GetCalls() []struct {
	Ctx      context.Context
	Subject  string
	Category domain.QuotaCategory
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *quotaRepoMock) GetForUpdate(ctx context.Context, subject string, category domain.QuotaCategory, now time.Time) (*domain.UsageQuota, error) {
	if mock.GetForUpdateFunc == nil {
		panic("quotaRepoMock.GetForUpdateFunc: method is nil but quotaRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Subject  string
		Category domain.QuotaCategory
		Now      time.Time
	}{Ctx: ctx, Subject: subject, Category: category, Now: now}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, subject, category, now)
}

func (mock *quotaRepoMock) GetForUpdateCalls() []struct {
	Ctx      context.Context
	Subject  string
	Category domain.QuotaCategory
	Now      time.Time
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *quotaRepoMock) UpdateCounters(ctx context.Context, q *domain.UsageQuota) error {
	if mock.UpdateCountersFunc == nil {
		panic("quotaRepoMock.UpdateCountersFunc: method is nil but quotaRepo.UpdateCounters was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.UsageQuota
	}{Ctx: ctx, Q: q}
	mock.lockUpdateCounters.Lock()
	mock.calls.UpdateCounters = append(mock.calls.UpdateCounters, callInfo)
	mock.lockUpdateCounters.Unlock()
	return mock.UpdateCountersFunc(ctx, q)
}

func (mock *quotaRepoMock) UpdateCountersCalls() []struct {
	Ctx context.Context
	Q   *domain.UsageQuota
} {
	mock.lockUpdateCounters.RLock()
	calls := mock.calls.UpdateCounters
	mock.lockUpdateCounters.RUnlock()
	return calls
}

func (mock *quotaRepoMock) IncrementRejected(ctx context.Context, subject string, category domain.QuotaCategory) error {
	if mock.IncrementRejectedFunc == nil {
		panic("quotaRepoMock.IncrementRejectedFunc: method is nil but quotaRepo.IncrementRejected was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Subject  string
		Category domain.QuotaCategory
	}{Ctx: ctx, Subject: subject, Category: category}
	mock.lockIncrementRejected.Lock()
	mock.calls.IncrementRejected = append(mock.calls.IncrementRejected, callInfo)
	mock.lockIncrementRejected.Unlock()
	return mock.IncrementRejectedFunc(ctx, subject, category)
}

func (mock *quotaRepoMock) IncrementRejectedCalls() []struct {
	Ctx      context.Context
	Subject  string
	Category domain.QuotaCategory
} {
	mock.lockIncrementRejected.RLock()
	calls := mock.calls.IncrementRejected
	mock.lockIncrementRejected.RUnlock()
	return calls
}

func (mock *quotaRepoMock) DeleteStale(ctx context.Context, before time.Time) (int, error) {
	if mock.DeleteStaleFunc == nil {
		panic("quotaRepoMock.DeleteStaleFunc: method is nil but quotaRepo.DeleteStale was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before time.Time
	}{Ctx: ctx, Before: before}
	mock.lockDeleteStale.Lock()
	mock.calls.DeleteStale = append(mock.calls.DeleteStale, callInfo)
	mock.lockDeleteStale.Unlock()
	return mock.DeleteStaleFunc(ctx, before)
}

func (mock *quotaRepoMock) DeleteStaleCalls() []struct {
	Ctx    context.Context
	Before time.Time
} {
	mock.lockDeleteStale.RLock()
	calls := mock.calls.DeleteStale
	mock.lockDeleteStale.RUnlock()
	return calls
}
