package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scaler standardizes feature vectors to zero mean and unit variance using
// per-column statistics captured at fit time. Applying a scaler fitted on a
// different column order silently misaligns every downstream feature, so the
// fitted schema travels with the scaler artifact.
type Scaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// FitScaler captures per-column mean and population standard deviation from
// the training matrix. Columns with zero variance scale by 1 to avoid
// dividing by zero.
func FitScaler(m *mat.Dense) *Scaler {
	rows, cols := m.Dims()

	s := &Scaler{
		Means: make([]float64, cols),
		Stds:  make([]float64, cols),
	}

	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, m)

		mean := stat.Mean(column, nil)
		variance := stat.MomentAbout(2, column, mean, nil)
		std := math.Sqrt(variance)
		if std == 0 {
			std = 1
		}

		s.Means[j] = mean
		s.Stds[j] = std
	}

	return s
}

// Fitted reports whether the scaler carries usable statistics.
func (s *Scaler) Fitted() bool {
	return s != nil && len(s.Means) > 0 && len(s.Means) == len(s.Stds)
}

// Transform standardizes a single feature vector. The input length must
// equal the fitted column count; a mismatch means the vector was assembled
// against the wrong schema and the model must not be used.
func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if !s.Fitted() {
		return nil, fmt.Errorf("%w: scaler is not fitted", ErrModelCorrupted)
	}
	if len(vector) != len(s.Means) {
		return nil, fmt.Errorf(
			"%w: feature vector length %d does not match fitted count %d",
			ErrModelCorrupted, len(vector), len(s.Means),
		)
	}

	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - s.Means[i]) / s.Stds[i]
	}
	return scaled, nil
}

// TransformMatrix standardizes every row of the training matrix in place
// and returns it.
func (s *Scaler) TransformMatrix(m *mat.Dense) (*mat.Dense, error) {
	rows, cols := m.Dims()
	if cols != len(s.Means) {
		return nil, fmt.Errorf(
			"%w: matrix has %d columns, scaler fitted with %d",
			ErrModelCorrupted, cols, len(s.Means),
		)
	}

	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j, v := range row {
			row[j] = (v - s.Means[j]) / s.Stds[j]
		}
	}
	return m, nil
}
