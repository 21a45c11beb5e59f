package api

import (
	"github.com/clinvital/vitalis/internal/config"
	"github.com/clinvital/vitalis/internal/infrastructure"
	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Params     model.Params
	Artifacts  string
	MaxUpload  int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Params:     cfg.Model.Params(),
		Artifacts:  cfg.Model.ArtifactPrefix,
		MaxUpload:  cfg.API.MaxUploadSizeBytes(),
	}
}
