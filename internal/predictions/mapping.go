package predictions

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/pkg/query"
	"github.com/clinvital/vitalis/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "predictions", "pr").
	Project("id", "ID").
	Project("patient_id", "PatientID").
	Project("predicted", "Predicted").
	Project("ranked", "Ranked").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for prediction queries.
// Nil fields are ignored.
type Filters struct {
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	Disease   *string    `json:"disease,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("PatientID", f.PatientID).
		WhereJSONHas("Predicted", f.Disease)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if p := values.Get("patient_id"); p != "" {
		if id, err := uuid.Parse(p); err == nil {
			f.PatientID = &id
		}
	}

	if d := values.Get("disease"); d != "" {
		f.Disease = &d
	}

	return f
}

func scanPrediction(s repository.Scanner) (Prediction, error) {
	var p Prediction
	var predictedRaw, rankedRaw []byte

	err := s.Scan(
		&p.ID,
		&p.PatientID,
		&predictedRaw,
		&rankedRaw,
		&p.CreatedAt,
	)

	if err != nil {
		return p, err
	}

	if len(predictedRaw) > 0 {
		if err := json.Unmarshal(predictedRaw, &p.Predicted); err != nil {
			return p, fmt.Errorf("unmarshal predicted: %w", err)
		}
	}
	if p.Predicted == nil {
		p.Predicted = []string{}
	}

	if len(rankedRaw) > 0 {
		if err := json.Unmarshal(rankedRaw, &p.Ranked); err != nil {
			return p, fmt.Errorf("unmarshal ranked: %w", err)
		}
	}

	return p, nil
}
