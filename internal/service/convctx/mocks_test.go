package convctx

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ contextRepo = &contextRepoMock{}

type contextRepoMock struct {
	CreateFunc             func(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error)
	GetFunc                func(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error)
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.ConversationContext, error)
	RenameFunc             func(ctx context.Context, userID, contextID uuid.UUID, title string) error
	DeleteFunc             func(ctx context.Context, userID, contextID uuid.UUID) error
	SetSummaryFunc         func(ctx context.Context, userID, contextID uuid.UUID, summary string, themes []string) error
	ReplaceMemoryItemsFunc func(ctx context.Context, contextID uuid.UUID, items []domain.MemoryItem) error

	calls struct {
		SetSummary []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ContextID uuid.UUID
			Summary   string
			Themes    []string
		}
		ReplaceMemoryItems []struct {
			Ctx       context.Context
			ContextID uuid.UUID
			Items     []domain.MemoryItem
		}
	}
	lockSetSummary         sync.RWMutex
	lockReplaceMemoryItems sync.RWMutex
}

func (mock *contextRepoMock) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error) {
	if mock.CreateFunc == nil {
		panic("contextRepoMock.CreateFunc: method is nil but contextRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, userID, title)
}

func (mock *contextRepoMock) Get(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error) {
	if mock.GetFunc == nil {
		panic("contextRepoMock.GetFunc: method is nil but contextRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, contextID)
}

func (mock *contextRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationContext, error) {
	if mock.ListByUserFunc == nil {
		panic("contextRepoMock.ListByUserFunc: method is nil but contextRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *contextRepoMock) Rename(ctx context.Context, userID, contextID uuid.UUID, title string) error {
	if mock.RenameFunc == nil {
		panic("contextRepoMock.RenameFunc: method is nil but contextRepo.Rename was just called")
	}
	return mock.RenameFunc(ctx, userID, contextID, title)
}

func (mock *contextRepoMock) Delete(ctx context.Context, userID, contextID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contextRepoMock.DeleteFunc: method is nil but contextRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, contextID)
}

func (mock *contextRepoMock) SetSummary(ctx context.Context, userID, contextID uuid.UUID, summary string, themes []string) error {
	if mock.SetSummaryFunc == nil {
		panic("contextRepoMock.SetSummaryFunc: method is nil but contextRepo.SetSummary was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ContextID uuid.UUID
		Summary   string
		Themes    []string
	}{Ctx: ctx, UserID: userID, ContextID: contextID, Summary: summary, Themes: themes}
	mock.lockSetSummary.Lock()
	mock.calls.SetSummary = append(mock.calls.SetSummary, callInfo)
	mock.lockSetSummary.Unlock()
	return mock.SetSummaryFunc(ctx, userID, contextID, summary, themes)
}

func (mock *contextRepoMock) SetSummaryCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ContextID uuid.UUID
	Summary   string
	Themes    []string
} {
	mock.lockSetSummary.RLock()
	calls := mock.calls.SetSummary
	mock.lockSetSummary.RUnlock()
	return calls
}

func (mock *contextRepoMock) ReplaceMemoryItems(ctx context.Context, contextID uuid.UUID, items []domain.MemoryItem) error {
	if mock.ReplaceMemoryItemsFunc == nil {
		panic("contextRepoMock.ReplaceMemoryItemsFunc: method is nil but contextRepo.ReplaceMemoryItems was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContextID uuid.UUID
		Items     []domain.MemoryItem
	}{Ctx: ctx, ContextID: contextID, Items: items}
	mock.lockReplaceMemoryItems.Lock()
	mock.calls.ReplaceMemoryItems = append(mock.calls.ReplaceMemoryItems, callInfo)
	mock.lockReplaceMemoryItems.Unlock()
	return mock.ReplaceMemoryItemsFunc(ctx, contextID, items)
}

func (mock *contextRepoMock) ReplaceMemoryItemsCalls() []struct {
	Ctx       context.Context
	ContextID uuid.UUID
	Items     []domain.MemoryItem
} {
	mock.lockReplaceMemoryItems.RLock()
	calls := mock.calls.ReplaceMemoryItems
	mock.lockReplaceMemoryItems.RUnlock()
	return calls
}

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	RecentFunc func(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error)
}

func (mock *chatRepoMock) Recent(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	if mock.RecentFunc == nil {
		panic("chatRepoMock.RecentFunc: method is nil but chatRepo.Recent was just called")
	}
	return mock.RecentFunc(ctx, userID, contextID, limit)
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

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req llm.Request) (string, error)
}

func (mock *completerMock) Complete(ctx context.Context, req llm.Request) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	return mock.CompleteFunc(ctx, req)
}
