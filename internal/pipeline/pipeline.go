// Package pipeline runs the prediction pipeline: it holds the currently
// active model, loads persisted artifacts at startup (training from scratch
// when none exist or they fail validation), and serves aligned inference
// and retraining requests. Model swaps are atomic; in-flight predictions
// finish against the model they started with.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/clinvital/vitalis/internal/features"
	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/internal/patients"
	"github.com/clinvital/vitalis/pkg/lifecycle"
)

// Source supplies the records a training run learns from. The patients
// system satisfies this.
type Source interface {
	All(ctx context.Context) ([]patients.Patient, error)
}

// TrainReport summarizes a completed training run.
type TrainReport struct {
	Records    int      `json:"records"`
	Features   int      `json:"features"`
	Vocabulary []string `json:"vocabulary"`
}

// Runtime coordinates the active model and its supporting systems.
type Runtime struct {
	mu         sync.RWMutex
	current    *model.Model
	recovering atomic.Bool

	store   *model.Store
	source  Source
	aligner *features.Aligner
	params  model.Params
	logger  *slog.Logger
}

// New creates a pipeline runtime. The model is not loaded until Start runs.
func New(store *model.Store, source Source, params model.Params, logger *slog.Logger) *Runtime {
	return &Runtime{
		store:   store,
		source:  source,
		aligner: features.NewAligner(),
		params:  params,
		logger:  logger.With("system", "pipeline"),
	}
}

// Start registers a startup hook that loads persisted artifacts, retraining
// from stored patients when artifacts are missing or corrupted. Startup
// without enough training data is not fatal; the runtime stays up and
// reports the model unavailable until a dataset is imported and a training
// run succeeds.
func (rt *Runtime) Start(lc *lifecycle.Coordinator) error {
	rt.logger.Info("starting pipeline")

	lc.OnStartup(func() {
		ctx := lc.Context()

		m, err := rt.store.Load(ctx)
		if err == nil {
			rt.swap(m)
			rt.logger.Info("model loaded",
				"features", len(m.Schema),
				"vocabulary", len(m.Vocabulary),
			)
			return
		}

		if errors.Is(err, model.ErrModelCorrupted) {
			rt.logger.Warn("persisted model failed validation, retraining", "error", err)
		} else if errors.Is(err, model.ErrModelUnavailable) {
			rt.logger.Info("no persisted model, training from stored patients")
		} else {
			rt.logger.Error("model load failed", "error", err)
			return
		}

		if _, err := rt.Train(ctx); err != nil {
			if errors.Is(err, model.ErrInsufficientData) {
				rt.logger.Warn("not enough records to train, predictions unavailable", "error", err)
				return
			}
			rt.logger.Error("startup training failed", "error", err)
		}
	})

	return nil
}

// Ready reports whether a model is active.
func (rt *Runtime) Ready() bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.current != nil
}

// Model returns the active model or ErrModelUnavailable.
func (rt *Runtime) Model() (*model.Model, error) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if rt.current == nil {
		return nil, model.ErrModelUnavailable
	}
	return rt.current, nil
}

func (rt *Runtime) swap(m *model.Model) {
	rt.mu.Lock()
	rt.current = m
	rt.mu.Unlock()
}

// Predict aligns the given demographics and measurements against the active
// model's schema and runs inference. Vitals may use any recognized synonym
// spelling; unmeasured metrics fall back to their documented defaults.
// A model that fails at inference returns the error to the caller and
// schedules a background retrain.
func (rt *Runtime) Predict(ctx context.Context, age int, vitals map[string]float64) (*model.Result, error) {
	m, err := rt.Model()
	if err != nil {
		return nil, err
	}

	vector := rt.aligner.Align(age, vitals, m.Schema)

	result, err := m.Predict(vector)
	if err != nil {
		if errors.Is(err, model.ErrModelCorrupted) {
			rt.recover()
		}
		return nil, err
	}

	rt.logger.Debug("prediction served",
		"predicted", result.Predicted,
		"features", len(vector),
	)
	return result, nil
}

// recover retrains in the background after the active model failed at
// inference time. At most one recovery run is in flight; the failing
// request still sees the corruption error rather than waiting on the
// retrain.
func (rt *Runtime) recover() {
	if !rt.recovering.CompareAndSwap(false, true) {
		return
	}

	rt.logger.Warn("active model failed at inference, retraining")

	go func() {
		defer rt.recovering.Store(false)
		if _, err := rt.Train(context.Background()); err != nil {
			rt.logger.Error("recovery training failed", "error", err)
		}
	}()
}

// Train fits a new model from every stored patient record, persists its
// artifacts, and activates it. The previous model keeps serving until the
// new one is ready.
func (rt *Runtime) Train(ctx context.Context) (*TrainReport, error) {
	records, err := rt.source.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training records: %w", err)
	}

	set := rt.assemble(records)

	m, err := model.Train(ctx, set, rt.params)
	if err != nil {
		return nil, err
	}

	if err := rt.store.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("persist model: %w", err)
	}

	rt.swap(m)

	rt.logger.Info("model trained",
		"records", len(records),
		"features", len(set.Schema),
		"vocabulary", m.Vocabulary,
	)

	return &TrainReport{
		Records:    len(records),
		Features:   len(set.Schema),
		Vocabulary: m.Vocabulary,
	}, nil
}

// assemble builds the aligned training set: the canonical schema extended
// with any extra measurement columns observed in the data, one aligned row
// per patient, and the patient's recorded diseases as labels.
func (rt *Runtime) assemble(records []patients.Patient) model.TrainingSet {
	schema := rt.schema(records)

	matrix := mat.NewDense(max(len(records), 1), len(schema), nil)
	labels := make([][]string, len(records))

	for i, p := range records {
		matrix.SetRow(i, rt.aligner.Align(p.Age, p.Vitals, schema))
		labels[i] = p.Diseases
	}

	return model.TrainingSet{
		Schema: schema,
		Matrix: matrix,
		Labels: labels,
	}
}

// schema returns the canonical column order plus sorted extra columns seen
// in the records. Sorting keeps retrained schemas stable for identical data.
func (rt *Runtime) schema(records []patients.Patient) []string {
	schema := rt.aligner.Schema()

	known := make(map[string]struct{}, len(schema))
	for _, column := range schema {
		known[features.Normalize(column)] = struct{}{}
	}
	for _, v := range features.Optional() {
		known[features.Normalize(v.Name)] = struct{}{}
		schema = append(schema, v.Name)
	}

	extras := make(map[string]struct{})
	for _, p := range records {
		for name := range p.Vitals {
			if canonical, ok := rt.aligner.Canonical(name); ok {
				name = canonical
			}
			if _, ok := known[features.Normalize(name)]; ok {
				continue
			}
			extras[name] = struct{}{}
		}
	}

	extraColumns := make([]string, 0, len(extras))
	for name := range extras {
		extraColumns = append(extraColumns, name)
	}
	sort.Strings(extraColumns)

	return append(schema, extraColumns...)
}
