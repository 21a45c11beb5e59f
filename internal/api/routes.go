package api

import (
	"net/http"

	"github.com/clinvital/vitalis/internal/diet"
	"github.com/clinvital/vitalis/internal/features"
	"github.com/clinvital/vitalis/internal/patients"
	"github.com/clinvital/vitalis/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, runtime *Runtime) {
	dietHandler := diet.NewHandler(
		domain.Patients,
		patients.MapHTTPStatus,
		runtime.Logger,
	)

	routes.Register(
		mux,
		domain.Patients.Handler().Routes(),
		domain.Predictions.Handler().Routes(),
		dietHandler.Routes(),
		features.NewHandler(runtime.Logger).Routes(),
	)
}
