package technique

import (
	"context"
	"sync"

	"github.com/jahboukie/inner-architect/internal/domain"
)

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
