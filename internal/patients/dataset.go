package patients

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clinvital/vitalis/internal/features"
)

// Dataset column names recognized beyond the vital sign catalog. Disease
// columns accept either header; a literal "None" cell means no conditions.
const (
	columnName     = "Name"
	columnGender   = "Gender"
	columnDiseases = "Disease_Prediction"

	noDiseases = "None"
)

// ImportResult summarizes a dataset import run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// ParseDataset reads a CSV dataset into create commands. Header names are
// matched tolerantly: vital columns resolve through catalog synonyms, and
// unrecognized numeric columns are kept under their raw header name so
// schema drift does not lose measurements. Rows that fail validation are
// reported, not fatal.
func ParseDataset(r io.Reader) ([]CreateCommand, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset header: %w", err)
	}

	aligner := features.NewAligner()
	layout := resolveLayout(header, aligner)

	if layout.name < 0 {
		return nil, nil, fmt.Errorf("dataset missing required column %q", columnName)
	}
	if layout.age < 0 {
		return nil, nil, fmt.Errorf("dataset missing required column %q", features.AgeColumn)
	}

	var commands []CreateCommand
	var problems []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		cmd, err := layout.row(record)
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		commands = append(commands, cmd)
	}

	return commands, problems, nil
}

// datasetLayout maps resolved header positions for one parse run.
type datasetLayout struct {
	name     int
	age      int
	gender   int
	diseases int
	vitals   map[int]string
}

func resolveLayout(header []string, aligner *features.Aligner) datasetLayout {
	layout := datasetLayout{
		name:     -1,
		age:      -1,
		gender:   -1,
		diseases: -1,
		vitals:   map[int]string{},
	}

	for i, raw := range header {
		column := strings.TrimSpace(raw)

		switch features.Normalize(column) {
		case features.Normalize(columnName):
			layout.name = i
		case features.Normalize(features.AgeColumn):
			layout.age = i
		case features.Normalize(columnGender):
			layout.gender = i
		case features.Normalize(columnDiseases), features.Normalize("Diseases"):
			layout.diseases = i
		default:
			if canonical, ok := aligner.Canonical(column); ok {
				layout.vitals[i] = canonical
			} else {
				layout.vitals[i] = column
			}
		}
	}

	return layout
}

func (l datasetLayout) row(record []string) (CreateCommand, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	age, err := strconv.ParseFloat(cell(l.age), 64)
	if err != nil {
		return CreateCommand{}, fmt.Errorf("%w: age %q is not numeric", ErrValidation, cell(l.age))
	}

	cmd := CreateCommand{
		Name:   cell(l.name),
		Age:    int(age),
		Gender: cell(l.gender),
		Vitals: map[string]float64{},
	}

	for i, name := range l.vitals {
		raw := cell(i)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		cmd.Vitals[name] = value
	}

	cmd.Diseases = parseDiseases(cell(l.diseases))

	if err := cmd.Validate(); err != nil {
		return CreateCommand{}, err
	}

	return cmd, nil
}

func parseDiseases(cell string) []string {
	if cell == "" || strings.EqualFold(cell, noDiseases) {
		return []string{}
	}

	parts := strings.Split(cell, ",")
	diseases := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			diseases = append(diseases, trimmed)
		}
	}
	return diseases
}

// WriteDataset writes patients as CSV in the canonical column order: name,
// demographics, catalog vitals, supplemental vitals, then the disease
// column. Missing measurements are left empty rather than filled with
// defaults.
func WriteDataset(w io.Writer, records []Patient) error {
	writer := csv.NewWriter(w)

	vitalColumns := exportVitalColumns()

	header := append([]string{columnName, features.AgeColumn, columnGender}, vitalColumns...)
	header = append(header, columnDiseases)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write dataset header: %w", err)
	}

	for _, p := range records {
		row := []string{p.Name, strconv.Itoa(p.Age), p.Gender}

		for _, column := range vitalColumns {
			if value, ok := p.Vitals[column]; ok {
				row = append(row, strconv.FormatFloat(value, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}

		if len(p.Diseases) == 0 {
			row = append(row, noDiseases)
		} else {
			row = append(row, strings.Join(p.Diseases, ", "))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write dataset row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportVitalColumns() []string {
	var columns []string
	for _, v := range features.Catalog() {
		columns = append(columns, v.Name)
	}
	for _, v := range features.Optional() {
		columns = append(columns, v.Name)
	}
	return columns
}

func (r *repo) Import(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	commands, problems, err := ParseDataset(reader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Skipped: len(problems),
		Errors:  problems,
	}

	for _, cmd := range commands {
		if _, err := r.Create(ctx, cmd); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("patient %s: %v", cmd.Name, err))
			continue
		}
		result.Imported++
	}

	if result.Errors == nil {
		result.Errors = []string{}
	}

	r.logger.Info("dataset imported", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func (r *repo) Export(ctx context.Context, w io.Writer) error {
	records, err := r.All(ctx)
	if err != nil {
		return err
	}
	return WriteDataset(w, records)
}
