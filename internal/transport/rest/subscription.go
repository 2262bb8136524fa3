package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
	"github.com/jahboukie/inner-architect/internal/service/subscription"
)

// subscriptionService defines the minimal interface needed by SubscriptionHandler.
type subscriptionService interface {
	Current(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	Status(ctx context.Context) ([]subscription.QuotaStatus, error)
	StartCheckout(ctx context.Context, plan domain.Plan) (string, error)
	PortalURL(ctx context.Context) (string, error)
	CancelPlan(ctx context.Context) (*domain.Subscription, error)
}

// SubscriptionHandler serves billing and quota REST endpoints.
type SubscriptionHandler struct {
	svc subscriptionService
	log *slog.Logger
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc subscriptionService, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, log: logger.With("handler", "subscription")}
}

type subscriptionResponse struct {
	Plan              string     `json:"plan"`
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancelAtPeriodEnd"`
	TrialEndsAt       *time.Time `json:"trialEndsAt,omitempty"`
}

func toSubscriptionResponse(sub *domain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		Plan:              sub.Plan.String(),
		Status:            string(sub.Status),
		CurrentPeriodEnd:  sub.CurrentPeriodEnd,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		TrialEndsAt:       sub.TrialEndsAt,
	}
}

type quotaStatusResponse struct {
	Category     string `json:"category"`
	DailyUsed    int    `json:"dailyUsed"`
	DailyLimit   int    `json:"dailyLimit"`
	MonthlyUsed  int    `json:"monthlyUsed"`
	MonthlyLimit int    `json:"monthlyLimit"`
}

type checkoutRequest struct {
	Plan string `json:"plan"`
}

type urlResponse struct {
	URL string `json:"url"`
}

// Current handles GET /api/v1/subscription.
func (h *SubscriptionHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	sub, err := h.svc.Current(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

// Status handles GET /api/v1/subscription/quota.
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]quotaStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, quotaStatusResponse{
			Category:     string(st.Category),
			DailyUsed:    st.DailyUsed,
			DailyLimit:   st.DailyLimit,
			MonthlyUsed:  st.MonthlyUsed,
			MonthlyLimit: st.MonthlyLimit,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotas": out})
}

// StartCheckout handles POST /api/v1/subscription/checkout.
func (h *SubscriptionHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	url, err := h.svc.StartCheckout(r.Context(), domain.Plan(req.Plan))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, urlResponse{URL: url})
}

// PortalURL handles POST /api/v1/subscription/portal.
func (h *SubscriptionHandler) PortalURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.PortalURL(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, urlResponse{URL: url})
}

// CancelPlan handles POST /api/v1/subscription/cancel.
func (h *SubscriptionHandler) CancelPlan(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.CancelPlan(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}
