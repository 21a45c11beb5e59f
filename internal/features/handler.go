package features

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinvital/vitalis/pkg/handlers"
	"github.com/clinvital/vitalis/pkg/routes"
)

// Handler serves the vital-sign reference table and measurement review.
type Handler struct {
	logger *slog.Logger
}

// ReviewRequest carries measurements to place against the reference ranges.
type ReviewRequest struct {
	Vitals map[string]float64 `json:"vitals"`
}

// NewHandler creates a Handler for the vitals reference endpoints.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("handler", "vitals")}
}

// Routes returns the route group definition for vitals endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/vitals",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "/review", Handler: h.Review},
		},
	}
}

// List serves the reference-range table.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, References())
}

// Review flags each submitted measurement against its reference range.
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Review(req.Vitals))
}
