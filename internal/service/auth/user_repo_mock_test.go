package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc           func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfileFunc    func(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error)
	SetEmailVerifiedFunc func(ctx context.Context, id uuid.UUID) error
	AnonymizeFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateProfile []struct {
			Ctx         context.Context
			ID          uuid.UUID
			DisplayName string
		}
		SetEmailVerified []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Anonymize []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByEmail       sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateProfile    sync.RWMutex
	lockSetEmailVerified sync.RWMutex
	lockAnonymize        sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		DisplayName string
	}{Ctx: ctx, ID: id, DisplayName: displayName}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, displayName)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	DisplayName string
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	if mock.SetEmailVerifiedFunc == nil {
		panic("userRepoMock.SetEmailVerifiedFunc: method is nil but userRepo.SetEmailVerified was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSetEmailVerified.Lock()
	mock.calls.SetEmailVerified = append(mock.calls.SetEmailVerified, callInfo)
	mock.lockSetEmailVerified.Unlock()
	return mock.SetEmailVerifiedFunc(ctx, id)
}

func (mock *userRepoMock) SetEmailVerifiedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockSetEmailVerified.RLock()
	calls := mock.calls.SetEmailVerified
	mock.lockSetEmailVerified.RUnlock()
	return calls
}

func (mock *userRepoMock) Anonymize(ctx context.Context, id uuid.UUID) error {
	if mock.AnonymizeFunc == nil {
		panic("userRepoMock.AnonymizeFunc: method is nil but userRepo.Anonymize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockAnonymize.Lock()
	mock.calls.Anonymize = append(mock.calls.Anonymize, callInfo)
	mock.lockAnonymize.Unlock()
	return mock.AnonymizeFunc(ctx, id)
}

func (mock *userRepoMock) AnonymizeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockAnonymize.RLock()
	calls := mock.calls.Anonymize
	mock.lockAnonymize.RUnlock()
	return calls
}
