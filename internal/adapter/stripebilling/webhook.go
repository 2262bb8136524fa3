package stripebilling

import (
	"encoding/json"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// EventKind is a normalized webhook event type.
type EventKind string

const (
	EventSubscriptionCreated EventKind = "customer.subscription.created"
	EventSubscriptionUpdated EventKind = "customer.subscription.updated"
	EventSubscriptionDeleted EventKind = "customer.subscription.deleted"
	EventInvoicePaid         EventKind = "invoice.payment_succeeded"
	EventInvoiceFailed       EventKind = "invoice.payment_failed"
)

// Event is a verified, normalized webhook payload. SubscriptionID may be
// empty on invoice events for one-off charges; CustomerID is always set for
// the kinds listed above.
type Event struct {
	Kind              EventKind
	SubscriptionID    string
	CustomerID        string
	Status            string
	PriceID           string
	CancelAtPeriodEnd bool
	CurrentPeriodEnd  time.Time
	TrialEnd          time.Time
}

// ErrUnhandledEvent marks event types the application does not consume.
var ErrUnhandledEvent = fmt.Errorf("unhandled stripe event type")

// ParseWebhook verifies the Stripe-Signature header against the endpoint
// secret and normalizes the payload. An empty secret skips verification
// (development only). Unknown event types return ErrUnhandledEvent with
// the raw type preserved in Kind.
func (c *Client) ParseWebhook(payload []byte, sigHeader string) (Event, error) {
	var ev stripe.Event
	if c.webhookSecret == "" {
		if err := json.Unmarshal(payload, &ev); err != nil {
			return Event{}, fmt.Errorf("decode stripe webhook: %w", err)
		}
		if ev.Data == nil {
			ev.Data = &stripe.EventData{}
		}
		return normalizeEvent(ev)
	}

	ev, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("verify stripe webhook: %w", err)
	}
	return normalizeEvent(ev)
}

func normalizeEvent(ev stripe.Event) (Event, error) {
	kind := EventKind(ev.Type)
	switch kind {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return Event{}, fmt.Errorf("decode subscription event: %w", err)
		}
		out := Event{
			Kind:              kind,
			SubscriptionID:    sub.ID,
			Status:            string(sub.Status),
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			out.PriceID = sub.Items.Data[0].Price.ID
		}
		if sub.CurrentPeriodEnd > 0 {
			out.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		}
		if sub.TrialEnd > 0 {
			out.TrialEnd = time.Unix(sub.TrialEnd, 0).UTC()
		}
		return out, nil

	case EventInvoicePaid, EventInvoiceFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(ev.Data.Raw, &inv); err != nil {
			return Event{}, fmt.Errorf("decode invoice event: %w", err)
		}
		out := Event{Kind: kind}
		if inv.Customer != nil {
			out.CustomerID = inv.Customer.ID
		}
		if inv.Subscription != nil {
			out.SubscriptionID = inv.Subscription.ID
		}
		return out, nil
	}

	return Event{Kind: kind}, fmt.Errorf("%w: %s", ErrUnhandledEvent, ev.Type)
}
