package patients_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinvital/vitalis/internal/patients"
)

func TestParseDataset(t *testing.T) {
	data := strings.Join([]string{
		"Name,Age,Gender,Hemoglobin,Hb A1c,Disease_Prediction",
		"Avery Cole,45,Male,13.5,5.4,None",
		"Riley Nash,61,Female,9.1,8.9,\"Anemia, Diabetes\"",
	}, "\n")

	commands, problems, err := patients.ParseDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}

	first := commands[0]
	if first.Name != "Avery Cole" || first.Age != 45 || first.Gender != "Male" {
		t.Errorf("unexpected demographics: %+v", first)
	}
	if len(first.Diseases) != 0 {
		t.Errorf("None should produce empty diseases, got %v", first.Diseases)
	}
	// "Hb A1c" resolves through the catalog synonym
	if v, ok := first.Vitals["HbA1c"]; !ok || v != 5.4 {
		t.Errorf("HbA1c = %v (present %v), expected 5.4", v, ok)
	}

	second := commands[1]
	if len(second.Diseases) != 2 || second.Diseases[0] != "Anemia" || second.Diseases[1] != "Diabetes" {
		t.Errorf("diseases = %v, expected [Anemia Diabetes]", second.Diseases)
	}
}

func TestParseDatasetKeepsUnrecognizedColumns(t *testing.T) {
	data := strings.Join([]string{
		"Name,Age,Gender,Ferritin_Level,Diseases",
		"Sam Okafor,33,Other,48.5,None",
	}, "\n")

	commands, _, err := patients.ParseDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}

	if v, ok := commands[0].Vitals["Ferritin_Level"]; !ok || v != 48.5 {
		t.Errorf("unrecognized column should be kept raw, got %v (present %v)", v, ok)
	}
}

func TestParseDatasetReportsBadRows(t *testing.T) {
	data := strings.Join([]string{
		"Name,Age,Gender,Hemoglobin,Disease_Prediction",
		"Valid Person,40,Male,13.0,None",
		",40,Male,13.0,None",
		"No Age,abc,Female,12.0,None",
		"Too Old,140,Male,13.0,None",
	}, "\n")

	commands, problems, err := patients.ParseDataset(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(commands) != 1 {
		t.Errorf("expected 1 valid command, got %d", len(commands))
	}
	if len(problems) != 3 {
		t.Errorf("expected 3 reported problems, got %d: %v", len(problems), problems)
	}
}

func TestParseDatasetMissingRequiredColumns(t *testing.T) {
	data := "Gender,Hemoglobin\nMale,13.0\n"

	if _, _, err := patients.ParseDataset(strings.NewReader(data)); err == nil {
		t.Error("expected error for dataset without Name and Age columns")
	}
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	records := []patients.Patient{
		{
			ID:     uuid.New(),
			Name:   "Avery Cole",
			Age:    45,
			Gender: "Male",
			Vitals: map[string]float64{
				"Hemoglobin": 13.5,
				"HbA1c":      5.4,
			},
			Diseases:  []string{},
			CreatedAt: time.Now(),
		},
		{
			ID:     uuid.New(),
			Name:   "Riley Nash",
			Age:    61,
			Gender: "Female",
			Vitals: map[string]float64{
				"Hemoglobin": 9.1,
			},
			Diseases:  []string{"Anemia", "Diabetes"},
			CreatedAt: time.Now(),
		},
	}

	var buf bytes.Buffer
	if err := patients.WriteDataset(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Disease_Prediction") {
		t.Error("export missing disease column header")
	}
	if !strings.Contains(out, "None") {
		t.Error("healthy patient should export diseases as None")
	}
	if !strings.Contains(out, "Anemia, Diabetes") {
		t.Error("diseases should export comma separated")
	}

	commands, problems, err := patients.ParseDataset(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("reparse problems: %v", problems)
	}
	if len(commands) != len(records) {
		t.Fatalf("round trip lost records: %d vs %d", len(commands), len(records))
	}

	for i, cmd := range commands {
		if cmd.Name != records[i].Name || cmd.Age != records[i].Age {
			t.Errorf("record %d demographics changed: %+v", i, cmd)
		}
		for name, value := range records[i].Vitals {
			if cmd.Vitals[name] != value {
				t.Errorf("record %d vital %s = %v, expected %v", i, name, cmd.Vitals[name], value)
			}
		}
	}
}
