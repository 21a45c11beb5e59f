package patients_test

import (
	"bytes"
	"reflect"
	"slices"
	"testing"

	"github.com/clinvital/vitalis/internal/patients"
)

func TestSampleDatasetIsDeterministic(t *testing.T) {
	first := patients.SampleDataset(25, 42)
	second := patients.SampleDataset(25, 42)

	if len(first) != 25 {
		t.Fatalf("expected 25 records, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical seeds should produce identical datasets")
	}

	other := patients.SampleDataset(25, 7)
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds should produce different datasets")
	}
}

func TestSampleDatasetHonorsConditionThresholds(t *testing.T) {
	records := patients.SampleDataset(200, 42)

	for _, p := range records {
		if p.Vitals["HbA1c"] > 6.5 && !slices.Contains(p.Diseases, "Diabetes") {
			t.Errorf("patient %s has HbA1c %.2f but no Diabetes label", p.Name, p.Vitals["HbA1c"])
		}
		if p.Vitals["Hemoglobin"] < 12.0 && !slices.Contains(p.Diseases, "Anemia") {
			t.Errorf("patient %s has Hemoglobin %.2f but no Anemia label", p.Name, p.Vitals["Hemoglobin"])
		}
		if p.Vitals["BP_Systolic"] > 140 && !slices.Contains(p.Diseases, "Hypertension") {
			t.Errorf("patient %s has systolic %.0f but no Hypertension label", p.Name, p.Vitals["BP_Systolic"])
		}
	}
}

func TestSampleDatasetRecordsPassValidationAndExport(t *testing.T) {
	records := patients.SampleDataset(100, 42)

	for _, p := range records {
		cmd := patients.CreateCommand{
			Name:     p.Name,
			Age:      p.Age,
			Gender:   p.Gender,
			Vitals:   p.Vitals,
			Diseases: p.Diseases,
		}
		if err := cmd.Validate(); err != nil {
			t.Fatalf("generated record %s failed validation: %v", p.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := patients.WriteDataset(&buf, records); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	parsed, problems, err := patients.ParseDataset(&buf)
	if err != nil {
		t.Fatalf("parse dataset: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("round trip produced row errors: %v", problems)
	}
	if len(parsed) != len(records) {
		t.Fatalf("round trip lost records: %d of %d", len(parsed), len(records))
	}
}
