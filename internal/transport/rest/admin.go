package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jahboukie/inner-architect/internal/service/analytics"
	"github.com/jahboukie/inner-architect/internal/transport/middleware"
)

// analyticsService defines the minimal interface needed by AdminHandler.
type analyticsService interface {
	Dashboard(ctx context.Context, from, to time.Time) (*analytics.Dashboard, error)
}

// AdminHandler serves the admin analytics endpoints.
type AdminHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc analyticsService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type dashboardUserCounts struct {
	Total  int `json:"total"`
	New    int `json:"new"`
	Active int `json:"active"`
}

type dashboardMessageDay struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type dashboardTechnique struct {
	Technique     string  `json:"technique"`
	UsedCount     int     `json:"usedCount"`
	AverageRating float64 `json:"averageRating"`
}

type dashboardPlan struct {
	Plan  string `json:"plan"`
	Count int    `json:"count"`
}

type dashboardRejection struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type dashboardResponse struct {
	From            time.Time             `json:"from"`
	To              time.Time             `json:"to"`
	Users           dashboardUserCounts   `json:"users"`
	MessageVolume   []dashboardMessageDay `json:"messageVolume"`
	TechniqueUsage  []dashboardTechnique  `json:"techniqueUsage"`
	PlanBreakdown   []dashboardPlan       `json:"planBreakdown"`
	QuotaRejections []dashboardRejection  `json:"quotaRejections"`
}

// Dashboard handles GET /api/v1/admin/dashboard. Optional from/to query
// parameters are RFC 3339 timestamps.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "from must be RFC 3339")
			return
		}
		from = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "to must be RFC 3339")
			return
		}
		to = t
	}

	dash, err := h.svc.Dashboard(r.Context(), from, to)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dashboardResponse{
		From:  dash.Range.From,
		To:    dash.Range.To,
		Users: dashboardUserCounts{Total: dash.Users.Total, New: dash.Users.New, Active: dash.Users.Active},
	}
	resp.MessageVolume = make([]dashboardMessageDay, 0, len(dash.MessageVolume))
	for _, d := range dash.MessageVolume {
		resp.MessageVolume = append(resp.MessageVolume, dashboardMessageDay{Day: d.Day, Count: d.Count})
	}
	resp.TechniqueUsage = make([]dashboardTechnique, 0, len(dash.TechniqueUsage))
	for _, t := range dash.TechniqueUsage {
		resp.TechniqueUsage = append(resp.TechniqueUsage, dashboardTechnique{
			Technique:     string(t.Technique),
			UsedCount:     t.UsedCount,
			AverageRating: t.AverageRating,
		})
	}
	resp.PlanBreakdown = make([]dashboardPlan, 0, len(dash.PlanBreakdown))
	for _, p := range dash.PlanBreakdown {
		resp.PlanBreakdown = append(resp.PlanBreakdown, dashboardPlan{Plan: p.Plan.String(), Count: p.Count})
	}
	resp.QuotaRejections = make([]dashboardRejection, 0, len(dash.QuotaRejections))
	for _, q := range dash.QuotaRejections {
		resp.QuotaRejections = append(resp.QuotaRejections, dashboardRejection{Category: string(q.Category), Count: q.Count})
	}

	writeJSON(w, http.StatusOK, resp)
}
