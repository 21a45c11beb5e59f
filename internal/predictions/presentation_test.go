package predictions_test

import (
	"strings"
	"testing"

	"github.com/clinvital/vitalis/internal/model"
	"github.com/clinvital/vitalis/internal/predictions"
)

func TestAssessTiers(t *testing.T) {
	ranked := []model.Rank{
		{Disease: "Anemia", Probability: 0.82},
		{Disease: "Diabetes", Probability: 0.41},
		{Disease: "Hypertension", Probability: 0.30},
		{Disease: "Kidney Disease", Probability: 0.05},
	}

	a := predictions.Assess([]string{"Anemia"}, ranked)

	if len(a.Notable) != 2 {
		t.Errorf("notable = %v, expected entries above 0.3 only", a.Notable)
	}
	if len(a.HighConfidence) != 1 || a.HighConfidence[0].Disease != "Anemia" {
		t.Errorf("high confidence = %v, expected only Anemia", a.HighConfidence)
	}

	// thresholds are exclusive: exactly 0.3 is not notable
	for _, rank := range a.Notable {
		if rank.Probability <= predictions.NotableThreshold {
			t.Errorf("rank %v at or below notable threshold", rank)
		}
	}
}

func TestAssessPreservesRankedOrder(t *testing.T) {
	ranked := []model.Rank{
		{Disease: "Diabetes", Probability: 0.9},
		{Disease: "Anemia", Probability: 0.6},
		{Disease: "Hypertension", Probability: 0.4},
	}

	a := predictions.Assess(nil, ranked)

	order := []string{"Diabetes", "Anemia", "Hypertension"}
	for i, rank := range a.Notable {
		if rank.Disease != order[i] {
			t.Errorf("notable[%d] = %q, expected %q", i, rank.Disease, order[i])
		}
	}

	if a.Predicted == nil || len(a.Predicted) != 0 {
		t.Errorf("nil predicted should become empty slice, got %v", a.Predicted)
	}
}

func TestAdvice(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		lines := predictions.Advice(nil)
		if len(lines) != 2 || !strings.Contains(lines[0], "balanced diet") {
			t.Errorf("unexpected healthy advice: %v", lines)
		}
	})

	t.Run("single condition", func(t *testing.T) {
		lines := predictions.Advice([]string{"Anemia"})
		if len(lines) != 2 {
			t.Fatalf("expected 2 anemia lines, got %v", lines)
		}
		if !strings.Contains(lines[0], "iron") {
			t.Errorf("unexpected first line: %q", lines[0])
		}
	})

	t.Run("combined conditions are additive and ordered", func(t *testing.T) {
		lines := predictions.Advice([]string{"Diabetes", "Anemia"})
		if len(lines) != 5 {
			t.Fatalf("expected 5 combined lines, got %d: %v", len(lines), lines)
		}
		// anemia block comes first regardless of input order
		if !strings.Contains(lines[0], "iron") {
			t.Errorf("expected anemia advice first, got %q", lines[0])
		}
	})

	t.Run("unknown condition falls back to healthy", func(t *testing.T) {
		lines := predictions.Advice([]string{"Gout"})
		if len(lines) != 2 || !strings.Contains(lines[1], "annual check-ups") {
			t.Errorf("unexpected fallback advice: %v", lines)
		}
	})
}
