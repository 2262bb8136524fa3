package technique

import (
	"context"
	"sync"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req llm.Request) (string, error)

	calls struct {
		Complete []struct {
			Ctx context.Context
			Req llm.Request
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req llm.Request) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req llm.Request
	}{Ctx: ctx, Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx context.Context
	Req llm.Request
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
