package subscription

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		// Default passthrough keeps tests focused on the callback logic.
		mock.lockRunInTx.Lock()
		mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
		mock.lockRunInTx.Unlock()
		return fn(ctx)
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ billingClient = &billingClientMock{}

type billingClientMock struct {
	EnabledFunc           func() bool
	EnsureCustomerFunc    func(ctx context.Context, email, userID string) (string, error)
	CheckoutURLFunc       func(ctx context.Context, customerID string, plan domain.Plan, successURL, cancelURL string) (string, error)
	PortalURLFunc         func(ctx context.Context, customerID, returnURL string) (string, error)
	CancelAtPeriodEndFunc func(ctx context.Context, stripeSubID string) error
	PlanForPriceFunc      func(priceID string) (domain.Plan, bool)
}

func (mock *billingClientMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		return true
	}
	return mock.EnabledFunc()
}

func (mock *billingClientMock) EnsureCustomer(ctx context.Context, email, userID string) (string, error) {
	if mock.EnsureCustomerFunc == nil {
		panic("billingClientMock.EnsureCustomerFunc: method is nil but billingClient.EnsureCustomer was just called")
	}
	return mock.EnsureCustomerFunc(ctx, email, userID)
}

func (mock *billingClientMock) CheckoutURL(ctx context.Context, customerID string, plan domain.Plan, successURL, cancelURL string) (string, error) {
	if mock.CheckoutURLFunc == nil {
		panic("billingClientMock.CheckoutURLFunc: method is nil but billingClient.CheckoutURL was just called")
	}
	return mock.CheckoutURLFunc(ctx, customerID, plan, successURL, cancelURL)
}

func (mock *billingClientMock) PortalURL(ctx context.Context, customerID, returnURL string) (string, error) {
	if mock.PortalURLFunc == nil {
		panic("billingClientMock.PortalURLFunc: method is nil but billingClient.PortalURL was just called")
	}
	return mock.PortalURLFunc(ctx, customerID, returnURL)
}

func (mock *billingClientMock) CancelAtPeriodEnd(ctx context.Context, stripeSubID string) error {
	if mock.CancelAtPeriodEndFunc == nil {
		panic("billingClientMock.CancelAtPeriodEndFunc: method is nil but billingClient.CancelAtPeriodEnd was just called")
	}
	return mock.CancelAtPeriodEndFunc(ctx, stripeSubID)
}

func (mock *billingClientMock) PlanForPrice(priceID string) (domain.Plan, bool) {
	if mock.PlanForPriceFunc == nil {
		return "", false
	}
	return mock.PlanForPriceFunc(priceID)
}
