package model

import (
	"errors"
	"net/http"
)

// Domain errors for model training and inference.
var (
	// ErrModelUnavailable indicates no trained model is present. The caller
	// is expected to request training; the operation is not retried.
	ErrModelUnavailable = errors.New("no trained model available; train the model first")
	// ErrModelCorrupted indicates persisted artifacts loaded but failed
	// structural validation, or an input does not match the fitted shape.
	// Recovery is a full retrain, never partial use.
	ErrModelCorrupted = errors.New("model artifacts are corrupted")
	// ErrInsufficientData indicates training was attempted with fewer than
	// MinTrainingRecords records. No model is produced and any previously
	// trained model remains in use.
	ErrInsufficientData = errors.New("not enough data to train model")
)

// MapHTTPStatus maps model errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrModelUnavailable) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrModelCorrupted) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrInsufficientData) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
