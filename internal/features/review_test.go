package features_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinvital/vitalis/internal/features"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReferencesCoverCatalogAndOptional(t *testing.T) {
	refs := features.References()

	expected := len(features.Catalog()) + len(features.Optional())
	if len(refs) != expected {
		t.Fatalf("expected %d references, got %d", expected, len(refs))
	}

	byName := make(map[string]features.Reference, len(refs))
	for _, ref := range refs {
		byName[ref.Name] = ref
	}

	hb, ok := byName["Hemoglobin"]
	if !ok {
		t.Fatal("Hemoglobin missing from references")
	}
	if hb.Unit != "g/dL" || hb.Min != 5.0 || hb.Max != 20.0 || hb.Optional {
		t.Errorf("unexpected Hemoglobin reference: %+v", hb)
	}

	mcv, ok := byName["MCV"]
	if !ok {
		t.Fatal("MCV missing from references")
	}
	if !mcv.Optional {
		t.Error("MCV should be marked optional")
	}
}

func TestReviewFlagsOutOfRangeValues(t *testing.T) {
	results := features.Review(map[string]float64{
		"Hemoglobin": 9999,
		"Creatinine": 0.1,
		"Heart_Rate": 72,
	})

	statuses := make(map[string]string, len(results))
	for _, m := range results {
		statuses[m.Name] = m.Status
	}

	if statuses["Hemoglobin"] != features.StatusHigh {
		t.Errorf("Hemoglobin 9999 status = %q, expected high", statuses["Hemoglobin"])
	}
	if statuses["Creatinine"] != features.StatusLow {
		t.Errorf("Creatinine 0.1 status = %q, expected low", statuses["Creatinine"])
	}
	if statuses["Heart_Rate"] != features.StatusNormal {
		t.Errorf("Heart_Rate 72 status = %q, expected normal", statuses["Heart_Rate"])
	}
}

func TestReviewResolvesSynonymsAndOrdersResults(t *testing.T) {
	results := features.Review(map[string]float64{
		"Ferritin":    500,
		"Hb A1c":      5.4,
		"bp systolic": 128,
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(results))
	}

	// Catalog order puts BP_Systolic before HbA1c; unknowns come last.
	if results[0].Name != "BP_Systolic" || results[0].Status != features.StatusNormal {
		t.Errorf("unexpected first measurement: %+v", results[0])
	}
	if results[1].Name != "HbA1c" || results[1].Unit != "%" {
		t.Errorf("unexpected second measurement: %+v", results[1])
	}
	if results[2].Name != "Ferritin" || results[2].Status != features.StatusUnknown {
		t.Errorf("unexpected third measurement: %+v", results[2])
	}
	if results[2].Unit != "" {
		t.Errorf("unknown metric should carry no unit, got %q", results[2].Unit)
	}
}

func TestHandlerListServesReferenceTable(t *testing.T) {
	handler := features.NewHandler(discardLogger())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/vitals", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var refs []features.Reference
	if err := json.NewDecoder(rec.Body).Decode(&refs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(refs) != len(features.Catalog())+len(features.Optional()) {
		t.Errorf("expected full reference table, got %d entries", len(refs))
	}
}

func TestHandlerReviewFlagsMeasurements(t *testing.T) {
	handler := features.NewHandler(discardLogger())

	body := strings.NewReader(`{"vitals":{"Hemoglobin":9999}}`)
	rec := httptest.NewRecorder()
	handler.Review(rec, httptest.NewRequest(http.MethodPost, "/vitals/review", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var results []features.Measurement
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 1 || results[0].Status != features.StatusHigh {
		t.Fatalf("expected one high measurement, got %+v", results)
	}
}

func TestHandlerReviewRejectsMalformedBody(t *testing.T) {
	handler := features.NewHandler(discardLogger())

	rec := httptest.NewRecorder()
	handler.Review(rec, httptest.NewRequest(http.MethodPost, "/vitals/review", strings.NewReader("{")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
