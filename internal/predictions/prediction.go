// Package predictions implements the prediction history domain: running the
// pipeline against stored patients, persisting the outcomes, and presenting
// them with confidence tiers and follow-up advice.
package predictions

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/model"
)

// Prediction represents one persisted prediction run for a patient.
// Predicted holds the binary estimator outputs; Ranked holds every known
// disease with its independently computed probability, descending.
type Prediction struct {
	ID        uuid.UUID    `json:"id"`
	PatientID uuid.UUID    `json:"patient_id"`
	Predicted []string     `json:"predicted"`
	Ranked    []model.Rank `json:"ranked"`
	CreatedAt time.Time    `json:"created_at"`
}

// PreviewCommand carries ad hoc demographics and measurements for a
// prediction that is not persisted. Vital names may use any recognized
// synonym spelling.
type PreviewCommand struct {
	Age    int                `json:"age"`
	Vitals map[string]float64 `json:"vitals"`
}
