package predictions

import (
	"errors"
	"net/http"

	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/internal/patients"
)

// Domain errors for prediction operations.
var (
	ErrNotFound  = errors.New("prediction not found")
	ErrDuplicate = errors.New("prediction already exists")
)

// MapHTTPStatus maps prediction domain errors to appropriate HTTP status
// codes. Patient lookup and model pipeline errors pass through with their
// own mappings.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, patients.ErrNotFound) ||
		errors.Is(err, patients.ErrValidation) {
		return patients.MapHTTPStatus(err)
	}
	return model.MapHTTPStatus(err)
}
