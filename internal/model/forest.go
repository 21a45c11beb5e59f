package model

import (
	"math"
	"math/rand/v2"
)

// Params holds the forest hyperparameters, fixed at training time rather
// than rediscovered per call.
type Params struct {
	Trees           int   `json:"trees" toml:"trees"`
	MaxDepth        int   `json:"max_depth" toml:"max_depth"`
	MinSamplesSplit int   `json:"min_samples_split" toml:"min_samples_split"`
	Seed            int64 `json:"seed" toml:"seed"`
}

// DefaultParams mirrors the hyperparameters the reference model was trained
// with: 100 trees, depth 10, minimum split 2.
func DefaultParams() Params {
	return Params{
		Trees:           100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		Seed:            42,
	}
}

// Forest is a random-forest binary classifier: bootstrap-sampled CART trees
// with sqrt(n) feature subsampling.
//
// Predict and Proba are deliberately independent signals. Predict takes a
// majority vote of per-tree classes; Proba averages per-tree leaf positive
// fractions. The two can disagree near the decision boundary, which is
// inherent to the one-vs-rest design this forest participates in.
type Forest struct {
	TreeList []*tree `json:"trees"`
	Width    int     `json:"width"`
}

// trainForest fits a forest on pre-scaled sample rows with 0/1 targets.
// Training is deterministic for a given rng seed.
func trainForest(rows [][]float64, y []int, p Params, rng *rand.Rand) *Forest {
	width := len(rows[0])

	tp := treeParams{
		maxDepth:        p.MaxDepth,
		minSamplesSplit: p.MinSamplesSplit,
		featureSubset:   max(1, int(math.Sqrt(float64(width)))),
	}

	f := &Forest{
		TreeList: make([]*tree, p.Trees),
		Width:    width,
	}

	n := len(rows)
	for t := 0; t < p.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.IntN(n)
		}
		f.TreeList[t] = growTree(rows, y, sample, tp, rng)
	}

	return f
}

// Predict returns 1 when a strict majority of trees votes positive.
func (f *Forest) Predict(vector []float64) int {
	votes := 0
	for _, t := range f.TreeList {
		if t.predict(vector) >= 0.5 {
			votes++
		}
	}
	if votes*2 > len(f.TreeList) {
		return 1
	}
	return 0
}

// Proba returns the mean positive-class probability across trees.
func (f *Forest) Proba(vector []float64) float64 {
	sum := 0.0
	for _, t := range f.TreeList {
		sum += t.predict(vector)
	}
	return sum / float64(len(f.TreeList))
}

// Validate checks structural integrity after deserialization.
func (f *Forest) Validate() bool {
	if f == nil || len(f.TreeList) == 0 || f.Width <= 0 {
		return false
	}
	for _, t := range f.TreeList {
		if !t.validate(f.Width) {
			return false
		}
	}
	return true
}
