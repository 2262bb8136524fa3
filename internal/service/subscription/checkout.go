package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// StartCheckout creates a Stripe checkout session for upgrading to a paid
// plan and returns the hosted payment URL. Returns ErrUnauthorized for
// anonymous callers and ErrConflict when billing is not configured.
func (s *Service) StartCheckout(ctx context.Context, plan domain.Plan) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if plan != domain.PlanPremium && plan != domain.PlanProfessional {
		return "", domain.NewValidationError("plan", "must be premium or professional")
	}
	if !s.billing.Enabled() {
		return "", fmt.Errorf("billing not configured: %w", domain.ErrConflict)
	}

	customerID, err := s.ensureCustomer(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("subscription.StartCheckout: %w", err)
	}

	url, err := s.billing.CheckoutURL(ctx, customerID, plan,
		s.baseURL+"/subscription/success",
		s.baseURL+"/subscription/cancel")
	if err != nil {
		return "", fmt.Errorf("subscription.StartCheckout: %w", err)
	}

	s.log.InfoContext(ctx, "checkout session created",
		slog.String("user_id", userID.String()),
		slog.String("plan", plan.String()))
	return url, nil
}

// PortalURL creates a Stripe billing portal session for the user.
func (s *Service) PortalURL(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !s.billing.Enabled() {
		return "", fmt.Errorf("billing not configured: %w", domain.ErrConflict)
	}

	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("subscription.PortalURL: %w", err)
	}
	if sub.StripeCustomerID == "" {
		return "", fmt.Errorf("no billing history: %w", domain.ErrConflict)
	}

	url, err := s.billing.PortalURL(ctx, sub.StripeCustomerID, s.baseURL+"/account")
	if err != nil {
		return "", fmt.Errorf("subscription.PortalURL: %w", err)
	}
	return url, nil
}

// CancelPlan flags the user's paid subscription to lapse at period end.
// The paid plan stays active until Stripe confirms the change by webhook.
func (s *Service) CancelPlan(ctx context.Context) (*domain.Subscription, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("subscription.CancelPlan: %w", err)
	}
	if sub.StripeSubscriptionID == "" {
		return nil, fmt.Errorf("no active paid subscription: %w", domain.ErrConflict)
	}

	if err := s.billing.CancelAtPeriodEnd(ctx, sub.StripeSubscriptionID); err != nil {
		return nil, fmt.Errorf("subscription.CancelPlan: %w", err)
	}

	sub.CancelAtPeriodEnd = true
	updated, err := s.subs.Update(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("subscription.CancelPlan update: %w", err)
	}

	s.log.InfoContext(ctx, "subscription set to cancel at period end",
		slog.String("user_id", userID.String()))
	return updated, nil
}

// ensureCustomer returns the user's Stripe customer id, creating and
// persisting one on first use.
func (s *Service) ensureCustomer(ctx context.Context, userID uuid.UUID) (string, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get subscription: %w", err)
	}
	if sub.StripeCustomerID != "" {
		return sub.StripeCustomerID, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	customerID, err := s.billing.EnsureCustomer(ctx, user.Email, userID.String())
	if err != nil {
		return "", err
	}
	if err := s.subs.SetStripeCustomer(ctx, userID, customerID); err != nil {
		return "", fmt.Errorf("persist customer id: %w", err)
	}
	return customerID, nil
}
