// Package patients implements the patient records domain. It provides types,
// data access, and validation for storing and querying patient demographics,
// vital sign measurements, and recorded health conditions.
package patients

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/features"
)

// Patient represents a stored patient record. Vitals holds measurements
// keyed by canonical vital sign name; Diseases holds the conditions recorded
// for the patient, empty for a healthy patient.
type Patient struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Age       int                `json:"age"`
	Gender    string             `json:"gender"`
	Vitals    map[string]float64 `json:"vitals"`
	Diseases  []string           `json:"diseases"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CreateCommand carries the data needed to register a patient.
type CreateCommand struct {
	Name     string             `json:"name"`
	Age      int                `json:"age"`
	Gender   string             `json:"gender"`
	Vitals   map[string]float64 `json:"vitals"`
	Diseases []string           `json:"diseases"`
}

// UpdateCommand carries the data needed to replace a patient's demographics
// and measurements. Diseases are managed separately through prediction runs.
type UpdateCommand struct {
	Name   string             `json:"name"`
	Age    int                `json:"age"`
	Gender string             `json:"gender"`
	Vitals map[string]float64 `json:"vitals"`
}

// Stats summarizes the patient population.
type Stats struct {
	Total         int            `json:"total"`
	AverageAge    float64        `json:"average_age"`
	AgeBuckets    map[string]int `json:"age_buckets"`
	GenderCounts  map[string]int `json:"gender_counts"`
	DiseaseCounts map[string]int `json:"disease_counts"`
	Healthy       int            `json:"healthy"`
}

const (
	MinAge = 1
	MaxAge = 120
)

// ageBuckets are the demographic bins the stats endpoint reports, each
// covering ages up to and including Max. Ages past the last bin fall into
// ageBucketOverflow.
var ageBuckets = []struct {
	Max   int
	Label string
}{
	{18, "0-18"},
	{30, "19-30"},
	{45, "31-45"},
	{60, "46-60"},
	{75, "61-75"},
	{90, "76-90"},
}

const ageBucketOverflow = "90+"

// AgeBucket returns the distribution bin label for an age.
func AgeBucket(age int) string {
	for _, b := range ageBuckets {
		if age <= b.Max {
			return b.Label
		}
	}
	return ageBucketOverflow
}

// ageBucketCase renders the bin table as a SQL CASE expression so the
// stats aggregation and AgeBucket cannot drift apart.
func ageBucketCase() string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, b := range ageBuckets {
		fmt.Fprintf(&sb, " WHEN age <= %d THEN '%s'", b.Max, b.Label)
	}
	fmt.Fprintf(&sb, " ELSE '%s' END", ageBucketOverflow)
	return sb.String()
}

var genders = []string{"Male", "Female", "Other"}

// NormalizeGender maps case-insensitive gender input to its canonical form.
// Returns an empty string for unrecognized input.
func NormalizeGender(input string) string {
	for _, g := range genders {
		if strings.EqualFold(strings.TrimSpace(input), g) {
			return g
		}
	}
	return ""
}

func validateDemographics(name string, age int, gender string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrValidation, MinAge, MaxAge)
	}
	if NormalizeGender(gender) == "" {
		return fmt.Errorf("%w: gender must be one of %s", ErrValidation, strings.Join(genders, ", "))
	}
	return nil
}

func validateVitals(vitals map[string]float64) error {
	for name, value := range vitals {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: vital %s must be a finite number", ErrValidation, name)
		}
	}
	for _, m := range features.Review(vitals) {
		if m.Status == features.StatusLow || m.Status == features.StatusHigh {
			return fmt.Errorf("%w: vital %s value %g outside plausible range %g-%g %s",
				ErrValidation, m.Name, m.Value, m.Min, m.Max, m.Unit)
		}
	}
	return nil
}

// Validate checks the command, returning an ErrValidation wrap on the first
// violation found.
func (c CreateCommand) Validate() error {
	if err := validateDemographics(c.Name, c.Age, c.Gender); err != nil {
		return err
	}
	return validateVitals(c.Vitals)
}

// Validate checks the command, returning an ErrValidation wrap on the first
// violation found.
func (c UpdateCommand) Validate() error {
	if err := validateDemographics(c.Name, c.Age, c.Gender); err != nil {
		return err
	}
	return validateVitals(c.Vitals)
}
