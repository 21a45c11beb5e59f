package model_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/pkg/lifecycle"
	"github.com/clinvital/vitalis/pkg/storage"
)

// memoryStorage is an in-memory storage.System for artifact tests.
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

// trainingSet builds a small separable dataset: rows with a high first
// feature carry "Anemia", rows with a high second feature carry "Diabetes".
func trainingSet(t *testing.T) model.TrainingSet {
	t.Helper()

	schema := []string{"Age", "Hemoglobin", "HbA1c"}
	rows := [][]float64{
		{30, 8.0, 5.0},
		{35, 8.5, 5.1},
		{40, 7.9, 5.2},
		{45, 8.2, 5.0},
		{50, 8.1, 5.3},
		{28, 8.4, 5.1},
		{31, 14.0, 8.5},
		{36, 14.5, 8.9},
		{41, 13.8, 9.1},
		{46, 14.2, 8.7},
		{51, 14.1, 9.0},
		{29, 13.9, 8.8},
	}
	labels := [][]string{
		{"Anemia"}, {"Anemia"}, {"Anemia"}, {"Anemia"}, {"Anemia"}, {"Anemia"},
		{"Diabetes"}, {"Diabetes"}, {"Diabetes"}, {"Diabetes"}, {"Diabetes"}, {"Diabetes"},
	}

	matrix := mat.NewDense(len(rows), len(schema), nil)
	for i, row := range rows {
		matrix.SetRow(i, row)
	}

	return model.TrainingSet{Schema: schema, Matrix: matrix, Labels: labels}
}

func smallParams() model.Params {
	p := model.DefaultParams()
	p.Trees = 20
	return p
}

func TestTrainRequiresMinimumRecords(t *testing.T) {
	set := trainingSet(t)

	short := model.TrainingSet{
		Schema: set.Schema,
		Matrix: mat.DenseCopyOf(set.Matrix.Slice(0, model.MinTrainingRecords-1, 0, len(set.Schema))),
		Labels: set.Labels[:model.MinTrainingRecords-1],
	}

	_, err := model.Train(context.Background(), short, smallParams())
	if !errors.Is(err, model.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}

	exact := model.TrainingSet{
		Schema: set.Schema,
		Matrix: mat.DenseCopyOf(set.Matrix.Slice(0, model.MinTrainingRecords, 0, len(set.Schema))),
		Labels: set.Labels[:model.MinTrainingRecords],
	}

	if _, err := model.Train(context.Background(), exact, smallParams()); err != nil {
		t.Fatalf("training with the minimum record count failed: %v", err)
	}
}

func TestTrainSortsVocabulary(t *testing.T) {
	set := trainingSet(t)
	set.Labels[0] = []string{"Anemia", "Iron Deficiency"}
	set.Labels[6] = []string{"Diabetes", "Heart Disease"}

	m, err := model.Train(context.Background(), set, smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	if !sort.StringsAreSorted(m.Vocabulary) {
		t.Errorf("vocabulary not sorted: %v", m.Vocabulary)
	}

	expected := []string{"Anemia", "Diabetes", "Heart Disease", "Iron Deficiency"}
	if len(m.Vocabulary) != len(expected) {
		t.Fatalf("expected vocabulary %v, got %v", expected, m.Vocabulary)
	}
	for i, label := range expected {
		if m.Vocabulary[i] != label {
			t.Errorf("vocabulary[%d] = %q, expected %q", i, m.Vocabulary[i], label)
		}
	}
}

func TestPredictSeparatesClasses(t *testing.T) {
	m, err := model.Train(context.Background(), trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	tests := []struct {
		name     string
		vector   []float64
		expected string
	}{
		{"low hemoglobin", []float64{38, 8.0, 5.1}, "Anemia"},
		{"high hba1c", []float64{38, 14.0, 8.8}, "Diabetes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := m.Predict(tc.vector)
			if err != nil {
				t.Fatalf("predict: %v", err)
			}

			found := false
			for _, disease := range result.Predicted {
				if disease == tc.expected {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q in predicted set %v", tc.expected, result.Predicted)
			}

			if len(result.Ranked) != len(m.Vocabulary) {
				t.Errorf("ranked has %d entries, expected %d", len(result.Ranked), len(m.Vocabulary))
			}
			if result.Ranked[0].Disease != tc.expected {
				t.Errorf("top ranked disease %q, expected %q", result.Ranked[0].Disease, tc.expected)
			}
		})
	}
}

func TestPredictRankingDescendingAndStable(t *testing.T) {
	m, err := model.Train(context.Background(), trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	result, err := m.Predict([]float64{40, 11.0, 7.0})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	for i := 1; i < len(result.Ranked); i++ {
		prev, curr := result.Ranked[i-1], result.Ranked[i]
		if curr.Probability > prev.Probability {
			t.Errorf("ranking not descending at %d: %v before %v", i, prev, curr)
		}
		if curr.Probability == prev.Probability && prev.Disease > curr.Disease {
			t.Errorf("tie at %d not in vocabulary order: %q before %q", i, prev.Disease, curr.Disease)
		}
	}
}

func TestTrainIsDeterministic(t *testing.T) {
	first, err := model.Train(context.Background(), trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("first train: %v", err)
	}

	second, err := model.Train(context.Background(), trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("second train: %v", err)
	}

	vectors := [][]float64{
		{38, 8.0, 5.1},
		{38, 14.0, 8.8},
		{45, 11.0, 7.0},
	}

	for _, vector := range vectors {
		a, err := first.Predict(vector)
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		b, err := second.Predict(vector)
		if err != nil {
			t.Fatalf("predict: %v", err)
		}

		for i := range a.Ranked {
			if a.Ranked[i] != b.Ranked[i] {
				t.Errorf("rank %d differs between runs: %v vs %v", i, a.Ranked[i], b.Ranked[i])
			}
		}
	}
}

func TestPredictRejectsWrongWidth(t *testing.T) {
	m, err := model.Train(context.Background(), trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	if _, err := m.Predict([]float64{38, 8.0}); !errors.Is(err, model.ErrModelCorrupted) {
		t.Errorf("expected ErrModelCorrupted for short vector, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	trained, err := model.Train(ctx, trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	store := model.NewStore(newMemoryStorage(), "models/current")

	if err := store.Save(ctx, trained); err != nil {
		t.Fatalf("save: %v", err)
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected complete artifact triple after save")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	vectors := [][]float64{
		{38, 8.0, 5.1},
		{38, 14.0, 8.8},
		{45, 11.0, 7.0},
	}

	for _, vector := range vectors {
		a, err := trained.Predict(vector)
		if err != nil {
			t.Fatalf("predict original: %v", err)
		}
		b, err := loaded.Predict(vector)
		if err != nil {
			t.Fatalf("predict loaded: %v", err)
		}

		if len(a.Predicted) != len(b.Predicted) {
			t.Fatalf("predicted sets differ: %v vs %v", a.Predicted, b.Predicted)
		}
		for i := range a.Predicted {
			if a.Predicted[i] != b.Predicted[i] {
				t.Errorf("predicted[%d] differs: %q vs %q", i, a.Predicted[i], b.Predicted[i])
			}
		}
		for i := range a.Ranked {
			if a.Ranked[i] != b.Ranked[i] {
				t.Errorf("rank %d differs after reload: %v vs %v", i, a.Ranked[i], b.Ranked[i])
			}
		}
	}
}

func TestStoreLoadMissingArtifacts(t *testing.T) {
	ctx := context.Background()
	store := model.NewStore(newMemoryStorage(), "models/current")

	if _, err := store.Load(ctx); !errors.Is(err, model.ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable for empty store, got %v", err)
	}
}

func TestStoreLoadCorruptedArtifact(t *testing.T) {
	ctx := context.Background()

	trained, err := model.Train(ctx, trainingSet(t), smallParams())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	backing := newMemoryStorage()
	store := model.NewStore(backing, "models/current")
	if err := store.Save(ctx, trained); err != nil {
		t.Fatalf("save: %v", err)
	}

	backing.blobs["models/current/scaler.json"] = []byte("{not json")

	if _, err := store.Load(ctx); !errors.Is(err, model.ErrModelCorrupted) {
		t.Errorf("expected ErrModelCorrupted for malformed artifact, got %v", err)
	}
}

func TestStoreDeleteToleratesAbsent(t *testing.T) {
	ctx := context.Background()
	store := model.NewStore(newMemoryStorage(), "models/current")

	if err := store.Delete(ctx); err != nil {
		t.Errorf("delete on empty store: %v", err)
	}
}
