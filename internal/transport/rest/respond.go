package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jahboukie/inner-architect/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type quotaErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
	Used     int    `json:"used"`
	Limit    int    `json:"limit"`
	Period   string `json:"period"`
}

// handleError maps service errors to HTTP responses. Validation and
// quota errors carry structured detail; everything unexpected is logged
// and hidden behind a 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	var qErr *domain.QuotaError

	switch {
	case errors.As(err, &vErr):
		fields := make([]fieldErrorResponse, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
	case errors.As(err, &qErr):
		writeJSON(w, http.StatusTooManyRequests, quotaErrorResponse{
			Error:    "quota exceeded",
			Category: qErr.Category,
			Used:     qErr.Used,
			Limit:    qErr.Limit,
			Period:   qErr.Period,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v, rejecting unknown garbage
// with a 400. Returns false after writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
