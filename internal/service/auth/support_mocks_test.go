package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ emailTokenRepo = &emailTokenRepoMock{}

type emailTokenRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.EmailToken) error
	GetByHashFunc     func(ctx context.Context, tokenHash string, purpose domain.EmailTokenPurpose) (*domain.EmailToken, error)
	ConsumeFunc       func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.EmailToken
		}
		Consume []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockConsume sync.RWMutex
}

func (mock *emailTokenRepoMock) Create(ctx context.Context, t *domain.EmailToken) error {
	if mock.CreateFunc == nil {
		panic("emailTokenRepoMock.CreateFunc: method is nil but emailTokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.EmailToken
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *emailTokenRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.EmailToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *emailTokenRepoMock) GetByHash(ctx context.Context, tokenHash string, purpose domain.EmailTokenPurpose) (*domain.EmailToken, error) {
	if mock.GetByHashFunc == nil {
		panic("emailTokenRepoMock.GetByHashFunc: method is nil but emailTokenRepo.GetByHash was just called")
	}
	return mock.GetByHashFunc(ctx, tokenHash, purpose)
}

func (mock *emailTokenRepoMock) Consume(ctx context.Context, id uuid.UUID) error {
	if mock.ConsumeFunc == nil {
		panic("emailTokenRepoMock.ConsumeFunc: method is nil but emailTokenRepo.Consume was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, id)
}

func (mock *emailTokenRepoMock) ConsumeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

func (mock *emailTokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("emailTokenRepoMock.DeleteExpiredFunc: method is nil but emailTokenRepo.DeleteExpired was just called")
	}
	return mock.DeleteExpiredFunc(ctx)
}

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	CreateFunc      func(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	UpdateFunc      func(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Subscription
		}
		Update []struct {
			Ctx context.Context
			S   *domain.Subscription
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *subscriptionRepoMock) Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	if mock.CreateFunc == nil {
		panic("subscriptionRepoMock.CreateFunc: method is nil but subscriptionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subscription
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *subscriptionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Subscription
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	if mock.GetByUserIDFunc == nil {
		panic("subscriptionRepoMock.GetByUserIDFunc: method is nil but subscriptionRepo.GetByUserID was just called")
	}
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *subscriptionRepoMock) Update(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	if mock.UpdateFunc == nil {
		panic("subscriptionRepoMock.UpdateFunc: method is nil but subscriptionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subscription
	}{Ctx: ctx, S: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *subscriptionRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   *domain.Subscription
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
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

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	return mock.GenerateRefreshTokenFunc()
}

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendVerificationFunc func(ctx context.Context, to, displayName, token string) error

	calls struct {
		SendVerification []struct {
			Ctx         context.Context
			To          string
			DisplayName string
			Token       string
		}
	}
	lockSendVerification sync.RWMutex
}

func (mock *mailerMock) SendVerification(ctx context.Context, to, displayName, token string) error {
	if mock.SendVerificationFunc == nil {
		panic("mailerMock.SendVerificationFunc: method is nil but mailer.SendVerification was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		To          string
		DisplayName string
		Token       string
	}{Ctx: ctx, To: to, DisplayName: displayName, Token: token}
	mock.lockSendVerification.Lock()
	mock.calls.SendVerification = append(mock.calls.SendVerification, callInfo)
	mock.lockSendVerification.Unlock()
	return mock.SendVerificationFunc(ctx, to, displayName, token)
}

func (mock *mailerMock) SendVerificationCalls() []struct {
	Ctx         context.Context
	To          string
	DisplayName string
	Token       string
} {
	mock.lockSendVerification.RLock()
	calls := mock.calls.SendVerification
	mock.lockSendVerification.RUnlock()
	return calls
}

var _ billingClient = &billingClientMock{}

type billingClientMock struct {
	EnabledFunc   func() bool
	CancelNowFunc func(ctx context.Context, stripeSubID string) error

	calls struct {
		CancelNow []struct {
			Ctx         context.Context
			StripeSubID string
		}
	}
	lockCancelNow sync.RWMutex
}

func (mock *billingClientMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		return true
	}
	return mock.EnabledFunc()
}

func (mock *billingClientMock) CancelNow(ctx context.Context, stripeSubID string) error {
	if mock.CancelNowFunc == nil {
		panic("billingClientMock.CancelNowFunc: method is nil but billingClient.CancelNow was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		StripeSubID string
	}{Ctx: ctx, StripeSubID: stripeSubID}
	mock.lockCancelNow.Lock()
	mock.calls.CancelNow = append(mock.calls.CancelNow, callInfo)
	mock.lockCancelNow.Unlock()
	return mock.CancelNowFunc(ctx, stripeSubID)
}

func (mock *billingClientMock) CancelNowCalls() []struct {
	Ctx         context.Context
	StripeSubID string
} {
	mock.lockCancelNow.RLock()
	calls := mock.calls.CancelNow
	mock.lockCancelNow.RUnlock()
	return calls
}
