// Package features implements the vital-sign catalog and the feature aligner
// that maps patient records onto the ordered feature vectors a trained model
// expects.
package features

// Vital describes a canonical vital-sign column: its unit, the value assumed
// when a measurement is absent, and the plausible range used for input checks.
type Vital struct {
	Name    string   `json:"name"`
	Unit    string   `json:"unit"`
	Default float64  `json:"default"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Aliases []string `json:"aliases,omitempty"`
}

// catalog is the fixed set of vital signs captured on patient entry,
// in canonical column order.
var catalog = []Vital{
	{Name: "Hemoglobin", Unit: "g/dL", Default: 14.0, Min: 5.0, Max: 20.0},
	{Name: "BP_Systolic", Unit: "mmHg", Default: 120.0, Min: 70.0, Max: 200.0},
	{Name: "BP_Diastolic", Unit: "mmHg", Default: 80.0, Min: 40.0, Max: 120.0},
	{Name: "Heart_Rate", Unit: "bpm", Default: 75.0, Min: 40.0, Max: 150.0},
	{Name: "HbA1c", Unit: "%", Default: 5.5, Min: 4.0, Max: 10.0, Aliases: []string{"Hb A1c"}},
	{Name: "Vitamin_D", Unit: "ng/mL", Default: 30.0, Min: 10.0, Max: 60.0},
	{Name: "LDL", Unit: "mg/dL", Default: 100.0, Min: 50.0, Max: 200.0},
	{Name: "Iron", Unit: "ug/dL", Default: 100.0, Min: 30.0, Max: 180.0},
	{Name: "Creatinine", Unit: "mg/dL", Default: 1.0, Min: 0.5, Max: 3.0},
	{Name: "MCH", Unit: "pg", Default: 29.0, Min: 20.0, Max: 40.0, Aliases: []string{"Mean Corpuscular Hemoglobin"}},
	{Name: "MCHC", Unit: "g/dL", Default: 33.0, Min: 30.0, Max: 38.0, Aliases: []string{"Mean Corpuscular Hemoglobin Concentration"}},
	{Name: "CRP", Unit: "mg/L", Default: 2.0, Min: 0.0, Max: 50.0, Aliases: []string{"C Reactive Protein"}},
}

// optional lists metrics that appear in some dataset versions but are not
// collected on patient entry. When a trained schema expects one of these and
// the record lacks it, the documented default is substituted. This tolerance
// for dataset schema drift is deliberate; substituting a fixed value for a
// missing feature is preferred over refusing to predict.
var optional = []Vital{
	{Name: "MCV", Unit: "fL", Default: 90.0, Min: 60.0, Max: 120.0, Aliases: []string{"Mean Corpuscular Volume"}},
	{Name: "UIBC", Unit: "ug/dL", Default: 240.0, Min: 100.0, Max: 450.0},
	{Name: "SGOT", Unit: "U/L", Default: 25.0, Min: 5.0, Max: 100.0, Aliases: []string{"AST"}},
	{Name: "Uric_Acid", Unit: "mg/dL", Default: 5.0, Min: 2.0, Max: 12.0},
}

// Catalog returns the canonical vital signs in column order.
func Catalog() []Vital {
	out := make([]Vital, len(catalog))
	copy(out, catalog)
	return out
}

// Optional returns the optionally-supported metrics with their fallback defaults.
func Optional() []Vital {
	out := make([]Vital, len(optional))
	copy(out, optional)
	return out
}

// InRange reports whether value lies within the vital's plausible range.
func (v Vital) InRange(value float64) bool {
	return value >= v.Min && value <= v.Max
}
