package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/internal/patients"
	"github.com/clinvital/vitalis/internal/pipeline"
	"github.com/clinvital/vitalis/pkg/lifecycle"
	"github.com/clinvital/vitalis/pkg/storage"
)

type memoryStorage struct {
	blobs map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{blobs: make(map[string][]byte)}
}

func (m *memoryStorage) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memoryStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.blobs[key] = data
	return nil
}

func (m *memoryStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	if _, ok := m.blobs[key]; !ok {
		return storage.ErrNotFound
	}
	delete(m.blobs, key)
	return nil
}

func (m *memoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

type staticSource struct {
	records []patients.Patient
}

func (s *staticSource) All(ctx context.Context) ([]patients.Patient, error) {
	return s.records, nil
}

func records(n int) []patients.Patient {
	out := make([]patients.Patient, 0, n)
	for i := range n {
		p := patients.Patient{
			ID:     uuid.New(),
			Name:   fmt.Sprintf("Patient %d", i),
			Age:    30 + i,
			Gender: "Female",
		}
		if i%2 == 0 {
			p.Vitals = map[string]float64{"Hemoglobin": 8.0, "HbA1c": 5.2}
			p.Diseases = []string{"Anemia"}
		} else {
			p.Vitals = map[string]float64{"Hemoglobin": 14.0, "HbA1c": 9.0}
			p.Diseases = []string{"Diabetes"}
		}
		out = append(out, p)
	}
	return out
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testParams() model.Params {
	p := model.DefaultParams()
	p.Trees = 20
	return p
}

func newRuntime(source pipeline.Source, backing *memoryStorage) *pipeline.Runtime {
	store := model.NewStore(backing, "models/current")
	return pipeline.New(store, source, testParams(), discard())
}

func TestTrainAndPredict(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(&staticSource{records: records(12)}, newMemoryStorage())

	if rt.Ready() {
		t.Fatal("runtime should not be ready before training")
	}
	if _, err := rt.Predict(ctx, 40, nil); !errors.Is(err, model.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable before training, got %v", err)
	}

	report, err := rt.Train(ctx)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if report.Records != 12 {
		t.Errorf("report records = %d, expected 12", report.Records)
	}
	if len(report.Vocabulary) != 2 {
		t.Errorf("vocabulary = %v, expected two diseases", report.Vocabulary)
	}

	result, err := rt.Predict(ctx, 45, map[string]float64{
		"hemoglobin": 8.1,
		"Hb A1c":     5.1,
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if result.Ranked[0].Disease != "Anemia" {
		t.Errorf("top disease = %q, expected Anemia", result.Ranked[0].Disease)
	}
}

func TestTrainRequiresEnoughRecords(t *testing.T) {
	rt := newRuntime(&staticSource{records: records(5)}, newMemoryStorage())

	if _, err := rt.Train(context.Background()); !errors.Is(err, model.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if rt.Ready() {
		t.Error("failed training should not activate a model")
	}
}

func TestStartLoadsPersistedModel(t *testing.T) {
	ctx := context.Background()
	backing := newMemoryStorage()

	seed := newRuntime(&staticSource{records: records(12)}, backing)
	if _, err := seed.Train(ctx); err != nil {
		t.Fatalf("seed train: %v", err)
	}

	// fresh runtime with no training data must load the persisted artifacts
	rt := newRuntime(&staticSource{}, backing)

	lc := lifecycle.New()
	if err := rt.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}
	lc.WaitForStartup()

	if !rt.Ready() {
		t.Fatal("runtime should be ready after loading persisted model")
	}

	if _, err := rt.Predict(ctx, 45, map[string]float64{"Hemoglobin": 8.0}); err != nil {
		t.Errorf("predict after load: %v", err)
	}
}

func TestStartRetrainsOnCorruptedArtifacts(t *testing.T) {
	ctx := context.Background()
	backing := newMemoryStorage()

	seed := newRuntime(&staticSource{records: records(12)}, backing)
	if _, err := seed.Train(ctx); err != nil {
		t.Fatalf("seed train: %v", err)
	}

	backing.blobs["models/current/estimators.json"] = []byte("{broken")

	rt := newRuntime(&staticSource{records: records(12)}, backing)

	lc := lifecycle.New()
	if err := rt.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}
	lc.WaitForStartup()

	if !rt.Ready() {
		t.Fatal("runtime should retrain when artifacts are corrupted")
	}
}

func TestStartSurvivesEmptyStoreAndNoData(t *testing.T) {
	rt := newRuntime(&staticSource{}, newMemoryStorage())

	lc := lifecycle.New()
	if err := rt.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}
	lc.WaitForStartup()

	if rt.Ready() {
		t.Error("runtime should stay up but not ready without data or artifacts")
	}
}

func TestTrainExtendsSchemaWithExtraColumns(t *testing.T) {
	ctx := context.Background()

	recs := records(12)
	for i := range recs {
		recs[i].Vitals["Ferritin_Level"] = 40.0 + float64(i)
	}

	rt := newRuntime(&staticSource{records: recs}, newMemoryStorage())

	report, err := rt.Train(ctx)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	m, err := rt.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}

	found := false
	for _, column := range m.Schema {
		if column == "Ferritin_Level" {
			found = true
		}
	}
	if !found {
		t.Errorf("schema %v missing imported extra column", m.Schema)
	}
	if report.Features != len(m.Schema) {
		t.Errorf("report features = %d, schema has %d", report.Features, len(m.Schema))
	}
}

func TestPredictRecoversFromCorruptedModel(t *testing.T) {
	ctx := context.Background()
	rt := newRuntime(&staticSource{records: records(12)}, newMemoryStorage())

	if _, err := rt.Train(ctx); err != nil {
		t.Fatalf("train: %v", err)
	}

	// Break the active scaler so the next inference fails validation.
	m, err := rt.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	m.Scaler.Means = nil

	if _, err := rt.Predict(ctx, 45, nil); !errors.Is(err, model.ErrModelCorrupted) {
		t.Fatalf("expected ErrModelCorrupted, got %v", err)
	}

	// The failure schedules a background retrain; the runtime must come
	// back on its own.
	deadline := time.After(10 * time.Second)
	for {
		if _, err := rt.Predict(ctx, 45, map[string]float64{"Hemoglobin": 8.0}); err == nil {
			return
		}
		select {
		case <-deadline:
			t.Fatal("runtime never recovered from the corrupted model")
		case <-time.After(25 * time.Millisecond):
		}
	}
}
