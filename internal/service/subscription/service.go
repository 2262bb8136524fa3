// Package subscription implements billing state, the Stripe webhook
// dispatcher and the usage quota gate that meters chat messages, exercises
// and communication analyses.
package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// subscriptionRepo defines the subscription repository interface needed by the service.
type subscriptionRepo interface {
	Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*domain.Subscription, error)
	GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*domain.Subscription, error)
	Update(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	SetStripeCustomer(ctx context.Context, userID uuid.UUID, customerID string) error
}

// quotaRepo defines the usage counter repository interface needed by the service.
type quotaRepo interface {
	Get(ctx context.Context, subject string, category domain.QuotaCategory) (*domain.UsageQuota, error)
	GetForUpdate(ctx context.Context, subject string, category domain.QuotaCategory, now time.Time) (*domain.UsageQuota, error)
	UpdateCounters(ctx context.Context, q *domain.UsageQuota) error
	IncrementRejected(ctx context.Context, subject string, category domain.QuotaCategory) error
}

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// billingClient defines the Stripe operations needed by the service.
type billingClient interface {
	Enabled() bool
	EnsureCustomer(ctx context.Context, email, userID string) (string, error)
	CheckoutURL(ctx context.Context, customerID string, plan domain.Plan, successURL, cancelURL string) (string, error)
	PortalURL(ctx context.Context, customerID, returnURL string) (string, error)
	CancelAtPeriodEnd(ctx context.Context, stripeSubID string) error
	PlanForPrice(priceID string) (domain.Plan, bool)
}

// Service implements subscription and quota operations.
type Service struct {
	log     *slog.Logger
	subs    subscriptionRepo
	quotas  quotaRepo
	users   userRepo
	tx      txManager
	billing billingClient
	baseURL string
}

// NewService creates a new subscription service instance. baseURL is the
// public origin used to build checkout redirect URLs.
func NewService(
	logger *slog.Logger,
	subs subscriptionRepo,
	quotas quotaRepo,
	users userRepo,
	tx txManager,
	billing billingClient,
	baseURL string,
) *Service {
	return &Service{
		log:     logger.With("service", "subscription"),
		subs:    subs,
		quotas:  quotas,
		users:   users,
		tx:      tx,
		billing: billing,
		baseURL: baseURL,
	}
}

// Current returns the authenticated user's subscription. Users without a
// row (should not happen after registration) get a synthetic free plan.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err == nil {
		return sub, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Subscription{
			UserID: userID,
			Plan:   domain.PlanFree,
			Status: domain.SubscriptionActive,
		}, nil
	}
	return nil, err
}
