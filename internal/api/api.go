// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/clinvital/vitalis/internal/config"
	"github.com/clinvital/vitalis/internal/infrastructure"
	"github.com/clinvital/vitalis/pkg/middleware"
	"github.com/clinvital/vitalis/pkg/module"
	"github.com/clinvital/vitalis/pkg/openapi"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	doc, err := specBytes(cfg.API.BasePath, cfg.Version)
	if err != nil {
		return nil, nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(doc))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
