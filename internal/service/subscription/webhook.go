package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jahboukie/inner-architect/internal/adapter/stripebilling"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// HandleWebhook applies one verified Stripe event to the local subscription
// mirror. Events for subscriptions we have no local row for are logged and
// acknowledged: retrying cannot make them resolvable.
func (s *Service) HandleWebhook(ctx context.Context, ev stripebilling.Event) error {
	sub, err := s.findLocal(ctx, ev)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "webhook for unknown subscription",
				slog.String("type", string(ev.Kind)),
				slog.String("stripe_subscription_id", ev.SubscriptionID),
				slog.String("stripe_customer_id", ev.CustomerID))
			return nil
		}
		return fmt.Errorf("subscription.HandleWebhook lookup: %w", err)
	}

	switch ev.Kind {
	case stripebilling.EventSubscriptionCreated, stripebilling.EventSubscriptionUpdated:
		s.applySubscriptionState(ctx, sub, ev)

	case stripebilling.EventSubscriptionDeleted:
		sub.Status = domain.SubscriptionCanceled
		sub.StripeSubscriptionID = ""
		sub.CancelAtPeriodEnd = false

	case stripebilling.EventInvoicePaid:
		sub.Status = domain.SubscriptionActive

	case stripebilling.EventInvoiceFailed:
		sub.Status = domain.SubscriptionPastDue

	default:
		// ParseWebhook filters unknown kinds already; double check here so a
		// future event type cannot silently corrupt state.
		s.log.WarnContext(ctx, "webhook kind not handled", slog.String("type", string(ev.Kind)))
		return nil
	}

	if _, err := s.subs.Update(ctx, sub); err != nil {
		return fmt.Errorf("subscription.HandleWebhook update: %w", err)
	}

	s.log.InfoContext(ctx, "webhook applied",
		slog.String("type", string(ev.Kind)),
		slog.String("user_id", sub.UserID.String()),
		slog.String("status", string(sub.Status)))
	return nil
}

// findLocal resolves the event to a local subscription row: by Stripe
// subscription id first, then by customer id. The customer fallback covers
// the first subscription.created event, which can arrive before checkout
// completion persisted the subscription id.
func (s *Service) findLocal(ctx context.Context, ev stripebilling.Event) (*domain.Subscription, error) {
	if ev.SubscriptionID != "" {
		sub, err := s.subs.GetByStripeSubscriptionID(ctx, ev.SubscriptionID)
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if ev.CustomerID == "" {
		return nil, domain.ErrNotFound
	}
	return s.subs.GetByStripeCustomerID(ctx, ev.CustomerID)
}

// applySubscriptionState copies the Stripe subscription snapshot onto the
// local row.
func (s *Service) applySubscriptionState(ctx context.Context, sub *domain.Subscription, ev stripebilling.Event) {
	sub.StripeSubscriptionID = ev.SubscriptionID
	sub.CancelAtPeriodEnd = ev.CancelAtPeriodEnd

	if plan, ok := s.billing.PlanForPrice(ev.PriceID); ok {
		sub.Plan = plan
	} else if ev.PriceID != "" {
		s.log.WarnContext(ctx, "webhook price not mapped to a plan",
			slog.String("price_id", ev.PriceID))
	}

	switch st := domain.SubscriptionStatus(ev.Status); st {
	case domain.SubscriptionActive, domain.SubscriptionTrialing,
		domain.SubscriptionPastDue, domain.SubscriptionCanceled:
		sub.Status = st
	default:
		// Stripe states we do not model (incomplete, unpaid) read as past
		// due: paid features lock while the money is unsettled.
		sub.Status = domain.SubscriptionPastDue
	}

	if !ev.CurrentPeriodEnd.IsZero() {
		end := ev.CurrentPeriodEnd
		sub.CurrentPeriodEnd = &end
	}
	if !ev.TrialEnd.IsZero() {
		trial := ev.TrialEnd
		sub.TrialEndsAt = &trial
	}
}
