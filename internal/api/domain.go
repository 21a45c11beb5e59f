package api

import (
	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/internal/patients"
	"github.com/clinvital/vitalis/internal/pipeline"
	"github.com/clinvital/vitalis/internal/predictions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Patients    patients.System
	Predictions predictions.System
	Pipeline    *pipeline.Runtime
}

// NewDomain creates all domain systems from the API runtime and registers
// the pipeline with the lifecycle coordinator so the model loads at startup.
func NewDomain(runtime *Runtime) (*Domain, error) {
	patientsSystem := patients.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		runtime.MaxUpload,
	)

	artifacts := model.NewStore(runtime.Storage, runtime.Artifacts)

	pipelineRuntime := pipeline.New(
		artifacts,
		patientsSystem,
		runtime.Params,
		runtime.Logger,
	)

	if err := pipelineRuntime.Start(runtime.Lifecycle); err != nil {
		return nil, err
	}

	predictionsSystem := predictions.New(
		runtime.Database.Connection(),
		pipelineRuntime,
		patientsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Patients:    patientsSystem,
		Predictions: predictionsSystem,
		Pipeline:    pipelineRuntime,
	}, nil
}
