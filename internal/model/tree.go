package model

import (
	"math"
	"math/rand/v2"
	"sort"
)

// node is a single decision-tree node. Leaves carry the fraction of positive
// training samples that reached them; internal nodes split on
// feature <= threshold.
type node struct {
	Leaf      bool    `json:"leaf"`
	Positive  float64 `json:"positive,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      *node   `json:"left,omitempty"`
	Right     *node   `json:"right,omitempty"`
}

// tree is a CART binary classifier grown with gini impurity and per-node
// random feature subsampling.
type tree struct {
	Root *node `json:"root"`
}

type treeParams struct {
	maxDepth        int
	minSamplesSplit int
	featureSubset   int
}

// growTree fits a decision tree on the sample indices idx over matrix rows.
// rows holds one feature slice per training sample; y holds 0/1 targets.
func growTree(rows [][]float64, y []int, idx []int, p treeParams, rng *rand.Rand) *tree {
	return &tree{Root: growNode(rows, y, idx, 0, p, rng)}
}

func growNode(rows [][]float64, y []int, idx []int, depth int, p treeParams, rng *rand.Rand) *node {
	positives := 0
	for _, i := range idx {
		positives += y[i]
	}
	fraction := float64(positives) / float64(len(idx))

	if depth >= p.maxDepth || len(idx) < p.minSamplesSplit || positives == 0 || positives == len(idx) {
		return &node{Leaf: true, Positive: fraction}
	}

	feature, threshold, ok := bestSplit(rows, y, idx, p, rng)
	if !ok {
		return &node{Leaf: true, Positive: fraction}
	}

	var left, right []int
	for _, i := range idx {
		if rows[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		return &node{Leaf: true, Positive: fraction}
	}

	return &node{
		Feature:   feature,
		Threshold: threshold,
		Left:      growNode(rows, y, left, depth+1, p, rng),
		Right:     growNode(rows, y, right, depth+1, p, rng),
	}
}

// bestSplit searches a random feature subset for the threshold minimizing
// weighted gini impurity. Returns ok=false when no split improves on the
// parent node.
func bestSplit(rows [][]float64, y []int, idx []int, p treeParams, rng *rand.Rand) (int, float64, bool) {
	nFeatures := len(rows[idx[0]])
	candidates := sampleFeatures(nFeatures, p.featureSubset, rng)

	parent := giniOf(y, idx)

	bestGain := 0.0
	bestFeature := -1
	bestThreshold := 0.0

	values := make([]float64, 0, len(idx))
	for _, feature := range candidates {
		values = values[:0]
		for _, i := range idx {
			values = append(values, rows[i][feature])
		}
		sort.Float64s(values)

		for k := 0; k+1 < len(values); k++ {
			if values[k] == values[k+1] {
				continue
			}
			threshold := (values[k] + values[k+1]) / 2

			gain := parent - splitImpurity(rows, y, idx, feature, threshold)
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func splitImpurity(rows [][]float64, y []int, idx []int, feature int, threshold float64) float64 {
	var leftN, leftPos, rightN, rightPos int
	for _, i := range idx {
		if rows[i][feature] <= threshold {
			leftN++
			leftPos += y[i]
		} else {
			rightN++
			rightPos += y[i]
		}
	}

	total := float64(leftN + rightN)
	impurity := 0.0
	if leftN > 0 {
		impurity += float64(leftN) / total * gini(leftPos, leftN)
	}
	if rightN > 0 {
		impurity += float64(rightN) / total * gini(rightPos, rightN)
	}
	return impurity
}

func giniOf(y []int, idx []int) float64 {
	positives := 0
	for _, i := range idx {
		positives += y[i]
	}
	return gini(positives, len(idx))
}

func gini(positives, n int) float64 {
	p := float64(positives) / float64(n)
	return 2 * p * (1 - p)
}

// sampleFeatures draws count distinct feature indices without replacement.
func sampleFeatures(n, count int, rng *rand.Rand) []int {
	if count >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	perm := rng.Perm(n)
	return perm[:count]
}

// predict walks the tree and returns the leaf's positive fraction.
func (t *tree) predict(vector []float64) float64 {
	n := t.Root
	for !n.Leaf {
		if vector[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Positive
}

// validate checks structural integrity after deserialization: every internal
// node has two children and feature indices stay within the fitted width.
func (t *tree) validate(width int) bool {
	if t == nil || t.Root == nil {
		return false
	}
	return validateNode(t.Root, width)
}

func validateNode(n *node, width int) bool {
	if n.Leaf {
		return !math.IsNaN(n.Positive)
	}
	if n.Feature < 0 || n.Feature >= width {
		return false
	}
	if n.Left == nil || n.Right == nil {
		return false
	}
	return validateNode(n.Left, width) && validateNode(n.Right, width)
}
