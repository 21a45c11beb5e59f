package features

import (
	"math"
	"sort"
)

// Measurement statuses reported by Review.
const (
	StatusLow     = "low"
	StatusNormal  = "normal"
	StatusHigh    = "high"
	StatusUnknown = "unknown"
)

// Reference pairs a catalog entry with whether it belongs to the
// optionally-supported set.
type Reference struct {
	Vital
	Optional bool `json:"optional"`
}

// Measurement is a reviewed value placed against its reference range.
// Unrecognized metrics carry no unit or range and report StatusUnknown.
type Measurement struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Status string  `json:"status"`
}

// References returns the full reference-range table: the canonical catalog
// followed by the optionally-supported metrics.
func References() []Reference {
	out := make([]Reference, 0, len(catalog)+len(optional))
	for _, v := range Catalog() {
		out = append(out, Reference{Vital: v})
	}
	for _, v := range Optional() {
		out = append(out, Reference{Vital: v, Optional: true})
	}
	return out
}

// Review resolves each measurement through the synonym table and places it
// against the catalog range. Recognized metrics come first in catalog
// order, unrecognized ones follow sorted by name. Non-finite values report
// StatusUnknown regardless of range.
func Review(vitals map[string]float64) []Measurement {
	aligner := NewAligner()

	byCanonical := make(map[string]float64, len(vitals))
	var unknown []string
	for name, value := range vitals {
		if canonical, ok := aligner.Canonical(name); ok {
			byCanonical[canonical] = value
			continue
		}
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)

	out := make([]Measurement, 0, len(vitals))
	for _, ref := range References() {
		value, ok := byCanonical[ref.Name]
		if !ok {
			continue
		}
		out = append(out, Measurement{
			Name:   ref.Name,
			Value:  value,
			Unit:   ref.Unit,
			Min:    ref.Min,
			Max:    ref.Max,
			Status: status(ref.Vital, value),
		})
	}

	for _, name := range unknown {
		out = append(out, Measurement{
			Name:   name,
			Value:  vitals[name],
			Status: StatusUnknown,
		})
	}

	return out
}

func status(v Vital, value float64) string {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return StatusUnknown
	case v.InRange(value):
		return StatusNormal
	case value < v.Min:
		return StatusLow
	default:
		return StatusHigh
	}
}
