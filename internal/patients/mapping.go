package patients

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/clinvital/vitalis/pkg/query"
	"github.com/clinvital/vitalis/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "patients", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("age", "Age").
	Project("gender", "Gender").
	Project("vitals", "Vitals").
	Project("diseases", "Diseases").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for patient queries.
// Nil fields are ignored.
type Filters struct {
	Gender  *string `json:"gender,omitempty"`
	Disease *string `json:"disease,omitempty"`
	MinAge  *int    `json:"min_age,omitempty"`
	MaxAge  *int    `json:"max_age,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Gender", f.Gender).
		WhereJSONHas("Diseases", f.Disease).
		WhereAtLeast("Age", f.MinAge).
		WhereAtMost("Age", f.MaxAge)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if g := values.Get("gender"); g != "" {
		if canonical := NormalizeGender(g); canonical != "" {
			f.Gender = &canonical
		}
	}

	if d := values.Get("disease"); d != "" {
		f.Disease = &d
	}

	if a := values.Get("min_age"); a != "" {
		if age, err := strconv.Atoi(a); err == nil {
			f.MinAge = &age
		}
	}

	if a := values.Get("max_age"); a != "" {
		if age, err := strconv.Atoi(a); err == nil {
			f.MaxAge = &age
		}
	}

	return f
}

func scanPatient(s repository.Scanner) (Patient, error) {
	var p Patient
	var vitalsRaw, diseasesRaw []byte

	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Gender,
		&vitalsRaw,
		&diseasesRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		return p, err
	}

	if len(vitalsRaw) > 0 {
		if err := json.Unmarshal(vitalsRaw, &p.Vitals); err != nil {
			return p, fmt.Errorf("unmarshal vitals: %w", err)
		}
	}
	if p.Vitals == nil {
		p.Vitals = map[string]float64{}
	}

	if len(diseasesRaw) > 0 {
		if err := json.Unmarshal(diseasesRaw, &p.Diseases); err != nil {
			return p, fmt.Errorf("unmarshal diseases: %w", err)
		}
	}
	if p.Diseases == nil {
		p.Diseases = []string{}
	}

	return p, nil
}
