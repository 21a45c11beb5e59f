// Package model implements the multi-label disease classifier: feature
// standardization, one-vs-rest random forests, training, and artifact
// persistence. A trained model is immutable after construction; retraining
// produces a new instance.
package model

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// MinTrainingRecords is the smallest dataset a training run accepts.
const MinTrainingRecords = 10

// TrainingSet is the aligned input to a training run. Matrix rows correspond
// one-to-one with Labels entries; columns follow Schema order.
type TrainingSet struct {
	Schema []string
	Matrix *mat.Dense
	Labels [][]string
}

// Model is a trained multi-label classifier: a fitted scaler, one forest per
// vocabulary entry, and the fixed class vocabulary that decodes estimator
// outputs back to disease names.
type Model struct {
	Schema     []string
	Scaler     *Scaler
	Vocabulary []string
	Estimators []*Forest
	Params     Params
}

// Rank pairs a disease with its independently computed probability.
type Rank struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// Result is the raw outcome of one inference pass.
//
// Predicted holds diseases whose binary estimator output was 1. Ranked holds
// every vocabulary entry sorted by probability descending, ties keeping
// vocabulary order. Because probabilities are computed independently of the
// binary outputs, a disease may rank high without being predicted and vice
// versa; that asymmetry is preserved, not reconciled.
type Result struct {
	Predicted []string `json:"predicted"`
	Ranked    []Rank   `json:"ranked"`
}

// Train fits a model from the training set: vocabulary extraction, scaler
// fit, then one independently trained forest per disease label. Per-label
// training runs concurrently; each label gets its own deterministically
// seeded generator so results do not depend on scheduling.
func Train(ctx context.Context, set TrainingSet, params Params) (*Model, error) {
	rows, cols := set.Matrix.Dims()
	if rows < MinTrainingRecords {
		return nil, fmt.Errorf("%w: have %d records, need %d", ErrInsufficientData, rows, MinTrainingRecords)
	}
	if rows != len(set.Labels) {
		return nil, fmt.Errorf("matrix rows %d do not match label rows %d", rows, len(set.Labels))
	}
	if cols != len(set.Schema) {
		return nil, fmt.Errorf("matrix columns %d do not match schema length %d", cols, len(set.Schema))
	}

	vocabulary := buildVocabulary(set.Labels)
	indicator := binarize(set.Labels, vocabulary)

	scaler := FitScaler(set.Matrix)
	scaled, err := scaler.TransformMatrix(set.Matrix)
	if err != nil {
		return nil, err
	}

	sampleRows := make([][]float64, rows)
	for i := range sampleRows {
		sampleRows[i] = scaled.RawRowView(i)
	}

	estimators := make([]*Forest, len(vocabulary))

	g, _ := errgroup.WithContext(ctx)
	for li := range vocabulary {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(params.Seed), uint64(li)))
			estimators[li] = trainForest(sampleRows, indicator[li], params, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Model{
		Schema:     set.Schema,
		Scaler:     scaler,
		Vocabulary: vocabulary,
		Estimators: estimators,
		Params:     params,
	}, nil
}

// buildVocabulary returns the sorted distinct labels observed across the
// dataset. Sorting keeps the ordering stable across runs; the vocabulary is
// persisted with the model and decodes estimator outputs.
func buildVocabulary(labels [][]string) []string {
	seen := make(map[string]struct{})
	for _, set := range labels {
		for _, label := range set {
			seen[label] = struct{}{}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for label := range seen {
		vocabulary = append(vocabulary, label)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// binarize materializes label sets into one 0/1 target column per
// vocabulary entry.
func binarize(labels [][]string, vocabulary []string) [][]int {
	position := make(map[string]int, len(vocabulary))
	for i, label := range vocabulary {
		position[label] = i
	}

	columns := make([][]int, len(vocabulary))
	for i := range columns {
		columns[i] = make([]int, len(labels))
	}

	for row, set := range labels {
		for _, label := range set {
			if col, ok := position[label]; ok {
				columns[col][row] = 1
			}
		}
	}
	return columns
}

// Predict scales an aligned feature vector and runs every per-disease
// estimator, collecting binary predictions and independent probabilities.
func (m *Model) Predict(vector []float64) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	scaled, err := m.Scaler.Transform(vector)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Predicted: make([]string, 0),
		Ranked:    make([]Rank, 0, len(m.Vocabulary)),
	}

	for i, disease := range m.Vocabulary {
		estimator := m.Estimators[i]

		if estimator.Predict(scaled) == 1 {
			result.Predicted = append(result.Predicted, disease)
		}

		result.Ranked = append(result.Ranked, Rank{
			Disease:     disease,
			Probability: estimator.Proba(scaled),
		})
	}

	// stable: equal probabilities keep vocabulary order
	sort.SliceStable(result.Ranked, func(a, b int) bool {
		return result.Ranked[a].Probability > result.Ranked[b].Probability
	})

	return result, nil
}

// Validate performs the typed post-deserialization check: the scaler must be
// fitted against the schema width, and the estimator count must match the
// vocabulary with every forest structurally sound.
func (m *Model) Validate() error {
	if m == nil {
		return ErrModelUnavailable
	}
	if !m.Scaler.Fitted() {
		return fmt.Errorf("%w: scaler lacks fitted statistics", ErrModelCorrupted)
	}
	if len(m.Scaler.Means) != len(m.Schema) {
		return fmt.Errorf(
			"%w: scaler fitted with %d columns, schema has %d",
			ErrModelCorrupted, len(m.Scaler.Means), len(m.Schema),
		)
	}
	if len(m.Estimators) != len(m.Vocabulary) {
		return fmt.Errorf(
			"%w: %d estimators for %d vocabulary entries",
			ErrModelCorrupted, len(m.Estimators), len(m.Vocabulary),
		)
	}
	for i, estimator := range m.Estimators {
		if !estimator.Validate() {
			return fmt.Errorf("%w: estimator %d failed validation", ErrModelCorrupted, i)
		}
		if estimator.Width != len(m.Schema) {
			return fmt.Errorf(
				"%w: estimator %d fitted with width %d, schema has %d",
				ErrModelCorrupted, i, estimator.Width, len(m.Schema),
			)
		}
	}
	return nil
}
