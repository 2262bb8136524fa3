package subscription

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	CreateFunc                    func(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetByUserIDFunc               func(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	GetByStripeSubscriptionIDFunc func(ctx context.Context, stripeSubID string) (*domain.Subscription, error)
	GetByStripeCustomerIDFunc     func(ctx context.Context, stripeCustomerID string) (*domain.Subscription, error)
	UpdateFunc                    func(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	SetStripeCustomerFunc         func(ctx context.Context, userID uuid.UUID, customerID string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Subscription
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByStripeSubscriptionID []struct {
			Ctx         context.Context
			StripeSubID string
		}
		GetByStripeCustomerID []struct {
			Ctx              context.Context
			StripeCustomerID string
		}
		Update []struct {
			Ctx context.Context
			S   *domain.Subscription
		}
		SetStripeCustomer []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CustomerID string
		}
	}
	lockCreate                    sync.RWMutex
	lockGetByUserID               sync.RWMutex
	lockGetByStripeSubscriptionID sync.RWMutex
	lockGetByStripeCustomerID     sync.RWMutex
	lockUpdate                    sync.RWMutex
	lockSetStripeCustomer         sync.RWMutex
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
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *subscriptionRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) GetByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*domain.Subscription, error) {
	if mock.GetByStripeSubscriptionIDFunc == nil {
		panic("subscriptionRepoMock.GetByStripeSubscriptionIDFunc: method is nil but subscriptionRepo.GetByStripeSubscriptionID was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		StripeSubID string
	}{Ctx: ctx, StripeSubID: stripeSubID}
	mock.lockGetByStripeSubscriptionID.Lock()
	mock.calls.GetByStripeSubscriptionID = append(mock.calls.GetByStripeSubscriptionID, callInfo)
	mock.lockGetByStripeSubscriptionID.Unlock()
	return mock.GetByStripeSubscriptionIDFunc(ctx, stripeSubID)
}

func (mock *subscriptionRepoMock) GetByStripeSubscriptionIDCalls() []struct {
	Ctx         context.Context
	StripeSubID string
} {
	mock.lockGetByStripeSubscriptionID.RLock()
	calls := mock.calls.GetByStripeSubscriptionID
	mock.lockGetByStripeSubscriptionID.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*domain.Subscription, error) {
	if mock.GetByStripeCustomerIDFunc == nil {
		panic("subscriptionRepoMock.GetByStripeCustomerIDFunc: method is nil but subscriptionRepo.GetByStripeCustomerID was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		StripeCustomerID string
	}{Ctx: ctx, StripeCustomerID: stripeCustomerID}
	mock.lockGetByStripeCustomerID.Lock()
	mock.calls.GetByStripeCustomerID = append(mock.calls.GetByStripeCustomerID, callInfo)
	mock.lockGetByStripeCustomerID.Unlock()
	return mock.GetByStripeCustomerIDFunc(ctx, stripeCustomerID)
}

func (mock *subscriptionRepoMock) GetByStripeCustomerIDCalls() []struct {
	Ctx              context.Context
	StripeCustomerID string
} {
	mock.lockGetByStripeCustomerID.RLock()
	calls := mock.calls.GetByStripeCustomerID
	mock.lockGetByStripeCustomerID.RUnlock()
	return calls
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

func (mock *subscriptionRepoMock) SetStripeCustomer(ctx context.Context, userID uuid.UUID, customerID string) error {
	if mock.SetStripeCustomerFunc == nil {
		panic("subscriptionRepoMock.SetStripeCustomerFunc: method is nil but subscriptionRepo.SetStripeCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CustomerID string
	}{Ctx: ctx, UserID: userID, CustomerID: customerID}
	mock.lockSetStripeCustomer.Lock()
	mock.calls.SetStripeCustomer = append(mock.calls.SetStripeCustomer, callInfo)
	mock.lockSetStripeCustomer.Unlock()
	return mock.SetStripeCustomerFunc(ctx, userID, customerID)
}

func (mock *subscriptionRepoMock) SetStripeCustomerCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CustomerID string
} {
	mock.lockSetStripeCustomer.RLock()
	calls := mock.calls.SetStripeCustomer
	mock.lockSetStripeCustomer.RUnlock()
	return calls
}
