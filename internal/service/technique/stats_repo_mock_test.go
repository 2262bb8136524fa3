package technique

import (
	"context"
	"sync"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	AddRatingFunc     func(ctx context.Context, sessionID string, technique domain.TechniqueID, rating int) error
	ListBySessionFunc func(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error)

	calls struct {
		AddRating []struct {
			Ctx       context.Context
			SessionID string
			Technique domain.TechniqueID
			Rating    int
		}
		ListBySession []struct {
			Ctx       context.Context
			SessionID string
		}
	}
	lockAddRating     sync.RWMutex
	lockListBySession sync.RWMutex
}

func (mock *statsRepoMock) AddRating(ctx context.Context, sessionID string, technique domain.TechniqueID, rating int) error {
	if mock.AddRatingFunc == nil {
		panic("statsRepoMock.AddRatingFunc: method is nil but statsRepo.AddRating was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Technique domain.TechniqueID
		Rating    int
	}{Ctx: ctx, SessionID: sessionID, Technique: technique, Rating: rating}
	mock.lockAddRating.Lock()
	mock.calls.AddRating = append(mock.calls.AddRating, callInfo)
	mock.lockAddRating.Unlock()
	return mock.AddRatingFunc(ctx, sessionID, technique, rating)
}

func (mock *statsRepoMock) AddRatingCalls() []struct {
	Ctx       context.Context
	SessionID string
	Technique domain.TechniqueID
	Rating    int
} {
	mock.lockAddRating.RLock()
	calls := mock.calls.AddRating
	mock.lockAddRating.RUnlock()
	return calls
}

func (mock *statsRepoMock) ListBySession(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error) {
	if mock.ListBySessionFunc == nil {
		panic("statsRepoMock.ListBySessionFunc: method is nil but statsRepo.ListBySession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockListBySession.Lock()
	mock.calls.ListBySession = append(mock.calls.ListBySession, callInfo)
	mock.lockListBySession.Unlock()
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *statsRepoMock) ListBySessionCalls() []struct {
	Ctx       context.Context
	SessionID string
} {
	mock.lockListBySession.RLock()
	calls := mock.calls.ListBySession
	mock.lockListBySession.RUnlock()
	return calls
}
