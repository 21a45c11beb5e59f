package features

import "strings"

// AgeColumn is the demographic column included in every feature schema.
const AgeColumn = "Age"

// Aligner resolves arbitrary dataset column names to canonical vital names
// and assembles feature vectors in a trained schema's column order.
//
// The synonym index is built once at construction. Lookup keys are
// normalized: lowercased with spaces and underscores removed, so
// "bp_systolic", "BP Systolic", and "BPSYSTOLIC" resolve identically.
type Aligner struct {
	index    map[string]string
	defaults map[string]float64
}

// NewAligner builds an aligner over the canonical catalog and the
// optionally-supported metrics.
func NewAligner() *Aligner {
	a := &Aligner{
		index:    make(map[string]string),
		defaults: make(map[string]float64),
	}

	a.register(Vital{Name: AgeColumn})
	for _, v := range catalog {
		a.register(v)
	}
	for _, v := range optional {
		a.register(v)
	}

	return a
}

func (a *Aligner) register(v Vital) {
	a.index[Normalize(v.Name)] = v.Name
	for _, alias := range v.Aliases {
		a.index[Normalize(alias)] = v.Name
	}
	if v.Name != AgeColumn {
		a.defaults[v.Name] = v.Default
	}
}

// Normalize produces the synonym lookup key for a column name.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")
	return name
}

// Canonical resolves a column name to its canonical vital name.
// The second return reports whether the name is recognized.
func (a *Aligner) Canonical(column string) (string, bool) {
	name, ok := a.index[Normalize(column)]
	return name, ok
}

// Default returns the fallback value for a recognized vital column.
func (a *Aligner) Default(column string) (float64, bool) {
	name, ok := a.Canonical(column)
	if !ok {
		return 0, false
	}
	d, ok := a.defaults[name]
	return d, ok
}

// Schema returns the canonical training column order: Age followed by the
// catalog vitals. Extra columns observed in an imported dataset extend this
// order at training time.
func (a *Aligner) Schema() []string {
	cols := make([]string, 0, len(catalog)+1)
	cols = append(cols, AgeColumn)
	for _, v := range catalog {
		cols = append(cols, v.Name)
	}
	return cols
}

// Align builds a feature vector for the given age and vitals in the exact
// column order of schema. Resolution per expected column:
//
//  1. the Age column takes the demographic age;
//  2. a measurement whose name matches the column through the synonym
//     index, regardless of case, underscores, or spaces;
//  3. the documented fallback default for a recognized but unmeasured
//     metric;
//  4. for a column outside the catalog, a measurement whose raw name
//     normalizes to the same key, otherwise 0.0.
//
// Align never fails on missing data; it degrades by substitution. Input
// validation (age range, required fields) happens before alignment. The
// output length always equals len(schema); feeding a vector built against
// any other column order to the scaler silently misaligns every feature,
// so schema must be the one captured when the model was fitted.
func (a *Aligner) Align(age int, vitals map[string]float64, schema []string) []float64 {
	byCanonical := make(map[string]float64, len(vitals))
	byRaw := make(map[string]float64, len(vitals))
	for name, value := range vitals {
		byRaw[Normalize(name)] = value
		if canonical, ok := a.Canonical(name); ok {
			byCanonical[canonical] = value
		}
	}

	vector := make([]float64, len(schema))
	for i, column := range schema {
		canonical, ok := a.Canonical(column)
		if !ok {
			vector[i] = byRaw[Normalize(column)]
			continue
		}

		if canonical == AgeColumn {
			vector[i] = float64(age)
			continue
		}

		if value, ok := byCanonical[canonical]; ok {
			vector[i] = value
			continue
		}

		vector[i] = a.defaults[canonical]
	}

	return vector
}
