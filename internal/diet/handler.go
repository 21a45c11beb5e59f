package diet

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/pkg/handlers"
	"github.com/clinvital/vitalis/pkg/routes"
)

// ConditionSource resolves a patient's recorded health conditions. The
// patients system satisfies this; the indirection keeps diet free of a
// dependency on patient storage.
type ConditionSource interface {
	Conditions(ctx context.Context, id uuid.UUID) ([]string, error)
}

// Handler provides HTTP endpoints for diet plan generation.
type Handler struct {
	source ConditionSource
	status func(error) int
	logger *slog.Logger
}

// GenerateRequest carries an explicit condition set for ad hoc plan
// generation, e.g. from a prediction preview that was never persisted.
type GenerateRequest struct {
	Conditions []string `json:"conditions"`
}

// PatientPlanResponse pairs the generated plan with the conditions that
// produced it.
type PatientPlanResponse struct {
	Conditions []string `json:"conditions"`
	Plan       Plan     `json:"plan"`
}

// NewHandler creates a Handler resolving patient conditions through the
// given source. status maps source errors to HTTP status codes.
func NewHandler(source ConditionSource, status func(error) int, logger *slog.Logger) *Handler {
	return &Handler{
		source: source,
		status: status,
		logger: logger.With("handler", "diet"),
	}
}

// Routes returns the route group definition for diet endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/diet",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Generate},
			{Method: "GET", Pattern: "/patient/{id}", Handler: h.ForPatient},
		},
	}
}

// Generate builds a plan from the conditions in the request body.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Generate(req.Conditions))
}

// ForPatient builds a plan from a patient's stored conditions.
func (h *Handler) ForPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("invalid patient id"))
		return
	}

	conditions, err := h.source.Conditions(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, h.status(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PatientPlanResponse{
		Conditions: conditions,
		Plan:       Generate(conditions),
	})
}
