package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/internal/service/reminder"
)

// reminderService defines the minimal interface needed by ReminderHandler.
type reminderService interface {
	Create(ctx context.Context, input reminder.CreateInput) (*domain.PracticeReminder, error)
	List(ctx context.Context) ([]domain.PracticeReminder, error)
	Update(ctx context.Context, input reminder.UpdateInput) (*domain.PracticeReminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderHandler serves practice reminder REST endpoints.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminder")}
}

type createReminderRequest struct {
	Technique string `json:"technique"`
	Frequency string `json:"frequency"`
}

type updateReminderRequest struct {
	Frequency string `json:"frequency"`
	Enabled   bool   `json:"enabled"`
}

type reminderResponse struct {
	ID         uuid.UUID `json:"id"`
	Technique  string    `json:"technique"`
	Frequency  string    `json:"frequency"`
	NextSendAt time.Time `json:"nextSendAt"`
	Enabled    bool      `json:"enabled"`
}

func toReminderResponse(rem *domain.PracticeReminder) reminderResponse {
	return reminderResponse{
		ID:         rem.ID,
		Technique:  string(rem.Technique),
		Frequency:  string(rem.Frequency),
		NextSendAt: rem.NextSendAt,
		Enabled:    rem.Enabled,
	}
}

// Create handles POST /api/v1/reminders.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rem, err := h.svc.Create(r.Context(), reminder.CreateInput{
		Technique: domain.TechniqueID(req.Technique),
		Frequency: domain.ReminderFrequency(req.Frequency),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReminderResponse(rem))
}

// List handles GET /api/v1/reminders.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]reminderResponse, 0, len(reminders))
	for i := range reminders {
		out = append(out, toReminderResponse(&reminders[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"reminders": out})
}

// Update handles PATCH /api/v1/reminders/{id}.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return
	}
	var req updateReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rem, err := h.svc.Update(r.Context(), reminder.UpdateInput{
		ID:        id,
		Frequency: domain.ReminderFrequency(req.Frequency),
		Enabled:   req.Enabled,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponse(rem))
}

// Delete handles DELETE /api/v1/reminders/{id}.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
