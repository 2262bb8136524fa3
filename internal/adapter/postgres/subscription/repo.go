// Package subscription implements the Subscription repository using PostgreSQL.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jahboukie/inner-architect/internal/adapter/postgres"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const subColumns = `id, user_id, plan, status, stripe_customer_id, stripe_subscription_id,
	current_period_end, cancel_at_period_end, trial_ends_at, created_at, updated_at`

const createSQL = `
INSERT INTO subscriptions (id, user_id, plan, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING ` + subColumns

const getByUserSQL = `
SELECT ` + subColumns + `
FROM subscriptions
WHERE user_id = $1`

const getByStripeSubSQL = `
SELECT ` + subColumns + `
FROM subscriptions
WHERE stripe_subscription_id = $1`

const getByStripeCustomerSQL = `
SELECT ` + subColumns + `
FROM subscriptions
WHERE stripe_customer_id = $1`

const updateSQL = `
UPDATE subscriptions
SET plan = $2, status = $3, stripe_customer_id = $4, stripe_subscription_id = $5,
    current_period_end = $6, cancel_at_period_end = $7, trial_ends_at = $8,
    updated_at = now()
WHERE id = $1
RETURNING ` + subColumns

const setCustomerSQL = `
UPDATE subscriptions
SET stripe_customer_id = $2, updated_at = now()
WHERE user_id = $1`

// Create inserts the initial subscription row for a user.
func (r *Repo) Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	created, err := scanSub(q.QueryRow(ctx, createSQL, s.ID, s.UserID, s.Plan.String(), string(s.Status)))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.UserID)
	}
	return created, nil
}

// GetByUserID returns the subscription for a user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSub(q.QueryRow(ctx, getByUserSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", userID)
	}
	return s, nil
}

// GetByStripeSubscriptionID returns the subscription mirroring a Stripe
// subscription object.
func (r *Repo) GetByStripeSubscriptionID(ctx context.Context, stripeSubID string) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSub(q.QueryRow(ctx, getByStripeSubSQL, stripeSubID))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", stripeSubID)
	}
	return s, nil
}

// GetByStripeCustomerID returns the subscription for a Stripe customer.
// Webhook handlers fall back to this when the subscription id is unknown.
func (r *Repo) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSub(q.QueryRow(ctx, getByStripeCustomerSQL, stripeCustomerID))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", stripeCustomerID)
	}
	return s, nil
}

// Update copies all mutable fields across and returns the stored row.
func (r *Repo) Update(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanSub(q.QueryRow(ctx, updateSQL,
		s.ID, s.Plan.String(), string(s.Status),
		nullIfEmpty(s.StripeCustomerID), nullIfEmpty(s.StripeSubscriptionID),
		s.CurrentPeriodEnd, s.CancelAtPeriodEnd, s.TrialEndsAt))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.ID)
	}
	return updated, nil
}

// SetStripeCustomer records the Stripe customer id created during checkout.
func (r *Repo) SetStripeCustomer(ctx context.Context, userID uuid.UUID, customerID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setCustomerSQL, userID, customerID)
	if err != nil {
		return postgres.MapError(err, "subscription", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription for user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSub(row rowScanner) (*domain.Subscription, error) {
	var s domain.Subscription
	var plan, status string
	var custID, subID *string
	err := row.Scan(&s.ID, &s.UserID, &plan, &status, &custID, &subID,
		&s.CurrentPeriodEnd, &s.CancelAtPeriodEnd, &s.TrialEndsAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Plan = domain.Plan(plan)
	s.Status = domain.SubscriptionStatus(status)
	if custID != nil {
		s.StripeCustomerID = *custID
	}
	if subID != nil {
		s.StripeSubscriptionID = *subID
	}
	return &s, nil
}

// nullIfEmpty maps "" to NULL so the partial unique indexes on Stripe ids
// ignore rows that never touched Stripe.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
