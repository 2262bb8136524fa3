package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/internal/service/convctx"
)

// contextService defines the minimal interface needed by ContextHandler.
type contextService interface {
	Create(ctx context.Context, title string) (*domain.ConversationContext, error)
	List(ctx context.Context) ([]domain.ConversationContext, error)
	Get(ctx context.Context, contextID uuid.UUID) (*domain.ConversationContext, error)
	Rename(ctx context.Context, contextID uuid.UUID, title string) error
	Delete(ctx context.Context, contextID uuid.UUID) error
	Summarize(ctx context.Context, contextID uuid.UUID) (*convctx.SummarizeResult, error)
}

// ContextHandler serves conversation context REST endpoints.
type ContextHandler struct {
	svc contextService
	log *slog.Logger
}

// NewContextHandler creates a ContextHandler.
func NewContextHandler(svc contextService, logger *slog.Logger) *ContextHandler {
	return &ContextHandler{svc: svc, log: logger.With("handler", "context")}
}

type contextRequest struct {
	Title string `json:"title"`
}

type contextResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Themes       []string  `json:"themes,omitempty"`
	MessageCount int       `json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type memoryItemResponse struct {
	Kind      string  `json:"kind"`
	Content   string  `json:"content"`
	Relevance float64 `json:"relevance"`
}

type summarizeResponse struct {
	Summary     string               `json:"summary"`
	Themes      []string             `json:"themes,omitempty"`
	MemoryItems []memoryItemResponse `json:"memoryItems,omitempty"`
}

func toContextResponse(c *domain.ConversationContext) contextResponse {
	return contextResponse{
		ID:           c.ID.String(),
		Title:        c.Title,
		Summary:      c.Summary,
		Themes:       c.Themes,
		MessageCount: c.MessageCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Create handles POST /api/v1/contexts.
func (h *ContextHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	conv, err := h.svc.Create(r.Context(), req.Title)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContextResponse(conv))
}

// List handles GET /api/v1/contexts.
func (h *ContextHandler) List(w http.ResponseWriter, r *http.Request) {
	contexts, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]contextResponse, 0, len(contexts))
	for i := range contexts {
		out = append(out, toContextResponse(&contexts[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"contexts": out})
}

// Get handles GET /api/v1/contexts/{id}.
func (h *ContextHandler) Get(w http.ResponseWriter, r *http.Request) {
	contextID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}

	conv, err := h.svc.Get(r.Context(), contextID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContextResponse(conv))
}

// Rename handles PATCH /api/v1/contexts/{id}.
func (h *ContextHandler) Rename(w http.ResponseWriter, r *http.Request) {
	contextID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}

	var req contextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Rename(r.Context(), contextID, req.Title); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/v1/contexts/{id}.
func (h *ContextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	contextID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}

	if err := h.svc.Delete(r.Context(), contextID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summarize handles POST /api/v1/contexts/{id}/summarize.
func (h *ContextHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	contextID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}

	result, err := h.svc.Summarize(r.Context(), contextID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := summarizeResponse{Summary: result.Summary, Themes: result.Themes}
	for _, item := range result.MemoryItems {
		resp.MemoryItems = append(resp.MemoryItems, memoryItemResponse{
			Kind:      string(item.Kind),
			Content:   item.Content,
			Relevance: item.Relevance,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
