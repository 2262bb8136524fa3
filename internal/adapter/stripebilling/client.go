// Package stripebilling wraps the Stripe SDK: customer and checkout
// management plus webhook parsing, normalized into local types so the
// service layer never touches Stripe structs.
package stripebilling

import (
	"context"
	"fmt"
	"log/slog"

	stripe "github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	stripesub "github.com/stripe/stripe-go/v79/subscription"

	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// Client is the Stripe API wrapper. A zero-key config produces a disabled
// client; callers must check Enabled before using billing operations.
type Client struct {
	enabled       bool
	webhookSecret string
	premiumPrice  string
	proPrice      string
	log           *slog.Logger
}

// NewClient configures the global Stripe key and returns the wrapper.
func NewClient(cfg config.StripeConfig, logger *slog.Logger) *Client {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &Client{
		enabled:       cfg.SecretKey != "",
		webhookSecret: cfg.WebhookSecret,
		premiumPrice:  cfg.PremiumPriceID,
		proPrice:      cfg.ProfessionalPriceID,
		log:           logger.With("component", "stripe"),
	}
}

// Enabled reports whether billing is configured.
func (c *Client) Enabled() bool { return c.enabled }

// EnsureCustomer creates a Stripe customer for the user and returns its id.
func (c *Client) EnsureCustomer(ctx context.Context, email, userID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create customer: %w", err)
	}
	return cust.ID, nil
}

// CheckoutURL creates a subscription checkout session for the plan and
// returns the hosted payment page URL.
func (c *Client) CheckoutURL(ctx context.Context, customerID string, plan domain.Plan, successURL, cancelURL string) (string, error) {
	priceID, err := c.priceFor(plan)
	if err != nil {
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create checkout session: %w", err)
	}
	return sess.URL, nil
}

// PortalURL creates a billing portal session for self-service management.
func (c *Client) PortalURL(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create portal session: %w", err)
	}
	return sess.URL, nil
}

// CancelAtPeriodEnd flags the Stripe subscription to lapse at period end.
func (c *Client) CancelAtPeriodEnd(ctx context.Context, stripeSubID string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	if _, err := stripesub.Update(stripeSubID, params); err != nil {
		return fmt.Errorf("stripe cancel subscription: %w", err)
	}
	return nil
}

// CancelNow cancels the Stripe subscription immediately. Used by account
// deletion.
func (c *Client) CancelNow(ctx context.Context, stripeSubID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	if _, err := stripesub.Cancel(stripeSubID, params); err != nil {
		return fmt.Errorf("stripe cancel subscription now: %w", err)
	}
	return nil
}

// PlanForPrice maps a Stripe price id back to the local plan.
func (c *Client) PlanForPrice(priceID string) (domain.Plan, bool) {
	switch priceID {
	case c.premiumPrice:
		return domain.PlanPremium, true
	case c.proPrice:
		return domain.PlanProfessional, true
	}
	return "", false
}

func (c *Client) priceFor(plan domain.Plan) (string, error) {
	switch plan {
	case domain.PlanPremium:
		return c.premiumPrice, nil
	case domain.PlanProfessional:
		return c.proPrice, nil
	}
	return "", fmt.Errorf("plan %q has no stripe price: %w", plan, domain.ErrValidation)
}
