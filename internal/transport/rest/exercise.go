package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/internal/service/exercise"
)

// exerciseService defines the minimal interface needed by ExerciseHandler.
type exerciseService interface {
	List(ctx context.Context, technique domain.TechniqueID) ([]domain.Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	Start(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error)
	Advance(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error)
	Complete(ctx context.Context, exerciseID uuid.UUID) (*domain.ExerciseProgress, error)
	Journey(ctx context.Context, technique domain.TechniqueID) (*exercise.Journey, error)
}

// ExerciseHandler serves guided exercise REST endpoints.
type ExerciseHandler struct {
	svc exerciseService
	log *slog.Logger
}

// NewExerciseHandler creates an ExerciseHandler.
func NewExerciseHandler(svc exerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, log: logger.With("handler", "exercise")}
}

type exerciseResponse struct {
	ID            uuid.UUID `json:"id"`
	Technique     string    `json:"technique"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Steps         []string  `json:"steps"`
	Difficulty    string    `json:"difficulty"`
	EstimatedMins int       `json:"estimatedMins"`
}

func toExerciseResponse(e domain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:            e.ID,
		Technique:     string(e.Technique),
		Title:         e.Title,
		Description:   e.Description,
		Steps:         e.Steps,
		Difficulty:    string(e.Difficulty),
		EstimatedMins: e.EstimatedMins,
	}
}

type progressResponse struct {
	ID          uuid.UUID  `json:"id"`
	ExerciseID  uuid.UUID  `json:"exerciseId"`
	CurrentStep int        `json:"currentStep"`
	Completed   bool       `json:"completed"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func toProgressResponse(p *domain.ExerciseProgress) progressResponse {
	return progressResponse{
		ID:          p.ID,
		ExerciseID:  p.ExerciseID,
		CurrentStep: p.CurrentStep,
		Completed:   p.Completed,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
	}
}

// List handles GET /api/v1/exercises with an optional technique filter.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	technique := domain.TechniqueID(r.URL.Query().Get("technique"))
	exercises, err := h.svc.List(r.Context(), technique)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]exerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toExerciseResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": out})
}

// Get handles GET /api/v1/exercises/{id}.
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}
	ex, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseResponse(*ex))
}

// Start handles POST /api/v1/exercises/{id}/start.
func (h *ExerciseHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.progressOp(w, r, h.svc.Start)
}

// Advance handles POST /api/v1/exercises/{id}/advance.
func (h *ExerciseHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.progressOp(w, r, h.svc.Advance)
}

// Complete handles POST /api/v1/exercises/{id}/complete.
func (h *ExerciseHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.progressOp(w, r, h.svc.Complete)
}

func (h *ExerciseHandler) progressOp(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.ExerciseProgress, error)) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise id")
		return
	}
	progress, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

type journeyStepResponse struct {
	Exercise exerciseResponse  `json:"exercise"`
	Progress *progressResponse `json:"progress,omitempty"`
}

type journeyResponse struct {
	Technique       string                `json:"technique"`
	Steps           []journeyStepResponse `json:"steps"`
	Completed       int                   `json:"completed"`
	PercentComplete int                   `json:"percentComplete"`
}

// Journey handles GET /api/v1/journeys/{technique}.
func (h *ExerciseHandler) Journey(w http.ResponseWriter, r *http.Request) {
	technique := domain.TechniqueID(r.PathValue("technique"))
	journey, err := h.svc.Journey(r.Context(), technique)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	steps := make([]journeyStepResponse, 0, len(journey.Steps))
	for _, st := range journey.Steps {
		step := journeyStepResponse{Exercise: toExerciseResponse(st.Exercise)}
		if st.Progress != nil {
			p := toProgressResponse(st.Progress)
			step.Progress = &p
		}
		steps = append(steps, step)
	}
	writeJSON(w, http.StatusOK, journeyResponse{
		Technique:       string(journey.Technique),
		Steps:           steps,
		Completed:       journey.Completed,
		PercentComplete: journey.PercentComplete,
	})
}
