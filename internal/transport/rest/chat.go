package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	SendMessage(ctx context.Context, input chat.SendInput) (*chat.SendResult, error)
	History(ctx context.Context, contextID uuid.UUID, before time.Time, limit int) ([]domain.ChatMessage, error)
}

// ChatHandler serves chat REST endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type sendMessageRequest struct {
	Message   string `json:"message"`
	ContextID string `json:"contextId,omitempty"`
	Technique string `json:"technique,omitempty"`
}

type sendMessageResponse struct {
	ContextID        string `json:"contextId,omitempty"`
	Response         string `json:"response"`
	Mood             string `json:"mood"`
	Technique        string `json:"technique"`
	SuggestSummarize bool   `json:"suggestSummarize"`
}

type chatMessageResponse struct {
	ID          string    `json:"id"`
	UserMessage string    `json:"userMessage"`
	AIResponse  string    `json:"aiResponse"`
	Mood        string    `json:"mood"`
	Technique   string    `json:"technique"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SendMessage handles POST /api/v1/chat/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := chat.SendInput{
		Message:   req.Message,
		Technique: domain.TechniqueID(req.Technique),
	}
	if req.ContextID != "" {
		id, err := uuid.Parse(req.ContextID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid contextId")
			return
		}
		input.ContextID = id
	}

	result, err := h.svc.SendMessage(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := sendMessageResponse{
		Response:         result.Response,
		Mood:             string(result.Mood),
		Technique:        result.Technique.String(),
		SuggestSummarize: result.SuggestSummarize,
	}
	if result.ContextID != uuid.Nil {
		resp.ContextID = result.ContextID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /api/v1/contexts/{id}/messages?before=RFC3339&limit=N.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	contextID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid context id")
		return
	}

	var before time.Time
	if v := r.URL.Query().Get("before"); v != "" {
		before, err = time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid before timestamp")
			return
		}
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	messages, err := h.svc.History(r.Context(), contextID, before, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]chatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessageResponse{
			ID:          m.ID.String(),
			UserMessage: m.UserMessage,
			AIResponse:  m.AIResponse,
			Mood:        string(m.Mood),
			Technique:   m.Technique.String(),
			CreatedAt:   m.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": out})
}
