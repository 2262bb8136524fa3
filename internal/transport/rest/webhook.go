package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jahboukie/inner-architect/internal/adapter/stripebilling"
)

const maxWebhookBody = 1 << 20

// webhookParser verifies and normalizes Stripe webhook payloads.
type webhookParser interface {
	ParseWebhook(payload []byte, sigHeader string) (stripebilling.Event, error)
}

// webhookConsumer applies verified billing events to local state.
type webhookConsumer interface {
	HandleWebhook(ctx context.Context, ev stripebilling.Event) error
}

// WebhookHandler serves the Stripe webhook endpoint.
type WebhookHandler struct {
	parser webhookParser
	svc    webhookConsumer
	log    *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(parser webhookParser, svc webhookConsumer, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{parser: parser, svc: svc, log: logger.With("handler", "webhook")}
}

// Stripe handles POST /webhooks/stripe. Signature verification happens before
// any payload inspection; unhandled event kinds are acknowledged so Stripe
// stops retrying them.
func (h *WebhookHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	ev, err := h.parser.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, stripebilling.ErrUnhandledEvent) {
			h.log.Debug("ignoring stripe event", "kind", ev.Kind)
			writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}
		h.log.Warn("stripe webhook rejected", "error", err)
		writeError(w, http.StatusBadRequest, "invalid webhook")
		return
	}

	if err := h.svc.HandleWebhook(r.Context(), ev); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}
