package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/internal/service/technique"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// techniqueService defines the minimal interface needed by TechniqueHandler.
type techniqueService interface {
	List() []technique.Technique
	Get(id domain.TechniqueID) (technique.Technique, error)
	Analyze(ctx context.Context, text string) (*technique.Analysis, error)
	BeliefSteps() []technique.BeliefStep
	BeliefChangeStep(ctx context.Context, input technique.BeliefChangeInput) (*technique.BeliefChangeResult, error)
	RateTechnique(ctx context.Context, sessionID string, id domain.TechniqueID, rating int) error
	SessionStats(ctx context.Context, sessionID string) ([]domain.TechniqueUsage, error)
}

// TechniqueHandler serves the technique toolbox REST endpoints.
type TechniqueHandler struct {
	svc techniqueService
	log *slog.Logger
}

// NewTechniqueHandler creates a TechniqueHandler.
func NewTechniqueHandler(svc techniqueService, logger *slog.Logger) *TechniqueHandler {
	return &TechniqueHandler{svc: svc, log: logger.With("handler", "technique")}
}

type techniqueResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	WhenToUse   string   `json:"whenToUse"`
	Steps       []string `json:"steps"`
}

func toTechniqueResponse(t technique.Technique) techniqueResponse {
	return techniqueResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Summary:     t.Summary,
		Description: t.Description,
		WhenToUse:   t.WhenToUse,
		Steps:       t.Steps,
	}
}

// List handles GET /api/v1/techniques.
func (h *TechniqueHandler) List(w http.ResponseWriter, r *http.Request) {
	techniques := h.svc.List()
	out := make([]techniqueResponse, 0, len(techniques))
	for _, t := range techniques {
		out = append(out, toTechniqueResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"techniques": out})
}

// Get handles GET /api/v1/techniques/{id}.
func (h *TechniqueHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(domain.TechniqueID(r.PathValue("id")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTechniqueResponse(t))
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type patternMatchResponse struct {
	Kind     string   `json:"kind"`
	Matches  []string `json:"matches"`
	Question string   `json:"question"`
}

type analyzeResponse struct {
	Patterns  []patternMatchResponse `json:"patterns"`
	Channels  map[string]int         `json:"channels"`
	Suggested string                 `json:"suggested"`
	Narrative string                 `json:"narrative"`
}

// Analyze handles POST /api/v1/techniques/analyze.
func (h *TechniqueHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := analyzeResponse{
		Patterns:  make([]patternMatchResponse, 0, len(analysis.Patterns)),
		Channels:  analysis.Channels,
		Suggested: analysis.Suggested.String(),
		Narrative: analysis.Narrative,
	}
	for _, p := range analysis.Patterns {
		resp.Patterns = append(resp.Patterns, patternMatchResponse{
			Kind:     string(p.Kind),
			Matches:  p.Matches,
			Question: p.Question,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type beliefStepResponse struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

// BeliefSteps handles GET /api/v1/techniques/belief-change/steps.
func (h *TechniqueHandler) BeliefSteps(w http.ResponseWriter, r *http.Request) {
	steps := h.svc.BeliefSteps()
	out := make([]beliefStepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, beliefStepResponse{Number: s.Number, Name: s.Name, Instruction: s.Instruction})
	}
	writeJSON(w, http.StatusOK, map[string]any{"steps": out})
}

type beliefChangeRequest struct {
	Step      int      `json:"step"`
	Belief    string   `json:"belief"`
	Responses []string `json:"responses,omitempty"`
}

type beliefChangeResponse struct {
	Step        int    `json:"step"`
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
	Guidance    string `json:"guidance"`
	NextStep    int    `json:"nextStep"`
}

// BeliefChange handles POST /api/v1/techniques/belief-change.
func (h *TechniqueHandler) BeliefChange(w http.ResponseWriter, r *http.Request) {
	var req beliefChangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.BeliefChangeStep(r.Context(), technique.BeliefChangeInput{
		Step:      req.Step,
		Belief:    req.Belief,
		Responses: req.Responses,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, beliefChangeResponse{
		Step:        result.Step,
		Name:        result.Name,
		Instruction: result.Instruction,
		Guidance:    result.Guidance,
		NextStep:    result.NextStep,
	})
}

type rateRequest struct {
	Rating int `json:"rating"`
}

// Rate handles POST /api/v1/techniques/{id}/rate.
func (h *TechniqueHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sessionID, ok := quotaSubject(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.svc.RateTechnique(r.Context(), sessionID, domain.TechniqueID(r.PathValue("id")), req.Rating); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type techniqueUsageResponse struct {
	Technique     string  `json:"technique"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// SessionStats handles GET /api/v1/techniques/stats.
func (h *TechniqueHandler) SessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := quotaSubject(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	usage, err := h.svc.SessionStats(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]techniqueUsageResponse, 0, len(usage))
	for i := range usage {
		out = append(out, techniqueUsageResponse{
			Technique:     usage[i].Technique.String(),
			Count:         usage[i].Count,
			AverageRating: usage[i].AverageRating(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": out})
}

// quotaSubject resolves whose stats a request touches: the session id
// for anonymous visitors, the user id otherwise.
func quotaSubject(ctx context.Context) (string, bool) {
	return ctxutil.QuotaSubject(ctx)
}
