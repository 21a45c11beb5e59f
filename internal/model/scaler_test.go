package model_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/clinvital/vitalis/internal/model"
)

func TestScalerStandardizesColumns(t *testing.T) {
	matrix := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 10,
		3, 10,
		4, 10,
	})

	scaler := model.FitScaler(matrix)
	if !scaler.Fitted() {
		t.Fatal("scaler not fitted")
	}

	if scaler.Means[0] != 2.5 {
		t.Errorf("mean[0] = %v, expected 2.5", scaler.Means[0])
	}

	// constant column: std guard keeps it 1 so transforms stay finite
	if scaler.Stds[1] != 1 {
		t.Errorf("std[1] = %v, expected guard value 1", scaler.Stds[1])
	}

	out, err := scaler.Transform([]float64{2.5, 10})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("centered vector transformed to %v, expected zeros", out)
	}

	out, err = scaler.Transform([]float64{4, 10})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		t.Errorf("transform produced non-finite value %v", out[0])
	}
	if out[0] <= 0 {
		t.Errorf("above-mean value transformed to %v, expected positive", out[0])
	}
}

func TestScalerRejectsWidthMismatch(t *testing.T) {
	scaler := model.FitScaler(mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	}))

	if _, err := scaler.Transform([]float64{1, 2, 3}); !errors.Is(err, model.ErrModelCorrupted) {
		t.Errorf("expected ErrModelCorrupted for width mismatch, got %v", err)
	}
}
