package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/adapter/llm"
	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	InsertFunc     func(ctx context.Context, m *domain.ChatMessage) error
	RecentFunc     func(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error)
	ListBeforeFunc func(ctx context.Context, userID, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			M   *domain.ChatMessage
		}
	}
	lockInsert sync.RWMutex
}

func (mock *chatRepoMock) Insert(ctx context.Context, m *domain.ChatMessage) error {
	if mock.InsertFunc == nil {
		panic("chatRepoMock.InsertFunc: method is nil but chatRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.ChatMessage
	}{Ctx: ctx, M: m}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, m)
}

func (mock *chatRepoMock) InsertCalls() []struct {
	Ctx context.Context
	M   *domain.ChatMessage
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *chatRepoMock) Recent(ctx context.Context, userID, contextID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	if mock.RecentFunc == nil {
		panic("chatRepoMock.RecentFunc: method is nil but chatRepo.Recent was just called")
	}
	return mock.RecentFunc(ctx, userID, contextID, limit)
}

func (mock *chatRepoMock) ListBefore(ctx context.Context, userID, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error) {
	if mock.ListBeforeFunc == nil {
		panic("chatRepoMock.ListBeforeFunc: method is nil but chatRepo.ListBefore was just called")
	}
	return mock.ListBeforeFunc(ctx, userID, contextID, before, limit)
}

var _ contextRepo = &contextRepoMock{}

type contextRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error)
	GetFunc             func(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error)
	ListMemoryItemsFunc func(ctx context.Context, contextID uuid.UUID) ([]domain.MemoryItem, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Title  string
		}
	}
	lockCreate sync.RWMutex
}

func (mock *contextRepoMock) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.ConversationContext, error) {
	if mock.CreateFunc == nil {
		panic("contextRepoMock.CreateFunc: method is nil but contextRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Title  string
	}{Ctx: ctx, UserID: userID, Title: title}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, title)
}

func (mock *contextRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Title  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contextRepoMock) Get(ctx context.Context, userID, contextID uuid.UUID) (*domain.ConversationContext, error) {
	if mock.GetFunc == nil {
		panic("contextRepoMock.GetFunc: method is nil but contextRepo.Get was just called")
	}
	return mock.GetFunc(ctx, userID, contextID)
}

func (mock *contextRepoMock) ListMemoryItems(ctx context.Context, contextID uuid.UUID) ([]domain.MemoryItem, error) {
	if mock.ListMemoryItemsFunc == nil {
		return nil, nil
	}
	return mock.ListMemoryItemsFunc(ctx, contextID)
}

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	IncrementUsageFunc func(ctx context.Context, sessionID string, technique domain.TechniqueID) error

	calls struct {
		IncrementUsage []struct {
			Ctx       context.Context
			SessionID string
			Technique domain.TechniqueID
		}
	}
	lockIncrementUsage sync.RWMutex
}

func (mock *statsRepoMock) IncrementUsage(ctx context.Context, sessionID string, technique domain.TechniqueID) error {
	if mock.IncrementUsageFunc == nil {
		panic("statsRepoMock.IncrementUsageFunc: method is nil but statsRepo.IncrementUsage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Technique domain.TechniqueID
	}{Ctx: ctx, SessionID: sessionID, Technique: technique}
	mock.lockIncrementUsage.Lock()
	mock.calls.IncrementUsage = append(mock.calls.IncrementUsage, callInfo)
	mock.lockIncrementUsage.Unlock()
	return mock.IncrementUsageFunc(ctx, sessionID, technique)
}

func (mock *statsRepoMock) IncrementUsageCalls() []struct {
	Ctx       context.Context
	SessionID string
	Technique domain.TechniqueID
} {
	mock.lockIncrementUsage.RLock()
	calls := mock.calls.IncrementUsage
	mock.lockIncrementUsage.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		// Default passthrough keeps tests focused on the callback logic.
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ quotaChecker = &quotaCheckerMock{}

type quotaCheckerMock struct {
	CheckAndConsumeFunc func(ctx context.Context, category domain.QuotaCategory) error
}

func (mock *quotaCheckerMock) CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error {
	if mock.CheckAndConsumeFunc == nil {
		panic("quotaCheckerMock.CheckAndConsumeFunc: method is nil but quotaChecker.CheckAndConsume was just called")
	}
	return mock.CheckAndConsumeFunc(ctx, category)
}

var _ coach = &coachMock{}

type coachMock struct {
	DetectMoodFunc func(text string) domain.Mood
	RecommendFunc  func(text string, mood domain.Mood) domain.TechniqueID
	PromptFunc     func(id domain.TechniqueID) string
}

func (mock *coachMock) DetectMood(text string) domain.Mood {
	if mock.DetectMoodFunc == nil {
		return domain.MoodNeutral
	}
	return mock.DetectMoodFunc(text)
}

func (mock *coachMock) Recommend(text string, mood domain.Mood) domain.TechniqueID {
	if mock.RecommendFunc == nil {
		return domain.TechniqueReframing
	}
	return mock.RecommendFunc(text, mood)
}

func (mock *coachMock) Prompt(id domain.TechniqueID) string {
	if mock.PromptFunc == nil {
		return "technique fragment"
	}
	return mock.PromptFunc(id)
}

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
