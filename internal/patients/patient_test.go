package patients_test

import (
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/clinvital/vitalis/internal/patients"
)

func TestCreateCommandValidate(t *testing.T) {
	valid := patients.CreateCommand{
		Name:   "Jordan Reyes",
		Age:    42,
		Gender: "female",
		// Ferritin is not in the catalog, so no range applies to it.
		Vitals: map[string]float64{"Hemoglobin": 13.2, "Ferritin": 500},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid command rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*patients.CreateCommand)
	}{
		{"empty name", func(c *patients.CreateCommand) { c.Name = "  " }},
		{"age below range", func(c *patients.CreateCommand) { c.Age = 0 }},
		{"age above range", func(c *patients.CreateCommand) { c.Age = 121 }},
		{"unknown gender", func(c *patients.CreateCommand) { c.Gender = "unknown" }},
		{"non-finite vital", func(c *patients.CreateCommand) { c.Vitals["Hemoglobin"] = math.NaN() }},
		{"vital above plausible range", func(c *patients.CreateCommand) { c.Vitals["Hemoglobin"] = 9999 }},
		{"vital below plausible range", func(c *patients.CreateCommand) { c.Vitals["Hemoglobin"] = 1.2 }},
		{"vital synonym above plausible range", func(c *patients.CreateCommand) { c.Vitals["Hb A1c"] = 42 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := patients.CreateCommand{
				Name:   valid.Name,
				Age:    valid.Age,
				Gender: valid.Gender,
				Vitals: map[string]float64{"Hemoglobin": 13.2},
			}
			tt.mutate(&cmd)

			if err := cmd.Validate(); !errors.Is(err, patients.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAgeBucketBoundaries(t *testing.T) {
	tests := []struct {
		age      int
		expected string
	}{
		{1, "0-18"},
		{18, "0-18"},
		{19, "19-30"},
		{30, "19-30"},
		{31, "31-45"},
		{45, "31-45"},
		{46, "46-60"},
		{60, "46-60"},
		{61, "61-75"},
		{75, "61-75"},
		{76, "76-90"},
		{90, "76-90"},
		{91, "90+"},
		{120, "90+"},
	}

	for _, tt := range tests {
		if got := patients.AgeBucket(tt.age); got != tt.expected {
			t.Errorf("AgeBucket(%d) = %q, expected %q", tt.age, got, tt.expected)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Male", "Male"},
		{"male", "Male"},
		{" FEMALE ", "Female"},
		{"other", "Other"},
		{"nonbinary", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := patients.NormalizeGender(tt.input); got != tt.expected {
			t.Errorf("NormalizeGender(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("gender", "male")
	values.Set("disease", "Anemia")
	values.Set("min_age", "18")
	values.Set("max_age", "65")

	f := patients.FiltersFromQuery(values)

	if f.Gender == nil || *f.Gender != "Male" {
		t.Errorf("gender filter = %v, expected canonical Male", f.Gender)
	}
	if f.Disease == nil || *f.Disease != "Anemia" {
		t.Errorf("disease filter = %v, expected Anemia", f.Disease)
	}
	if f.MinAge == nil || *f.MinAge != 18 {
		t.Errorf("min_age filter = %v, expected 18", f.MinAge)
	}
	if f.MaxAge == nil || *f.MaxAge != 65 {
		t.Errorf("max_age filter = %v, expected 65", f.MaxAge)
	}

	empty := patients.FiltersFromQuery(url.Values{})
	if empty.Gender != nil || empty.Disease != nil || empty.MinAge != nil || empty.MaxAge != nil {
		t.Error("empty query should produce no filters")
	}
}
