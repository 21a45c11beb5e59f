package diet_test

import (
	"strings"
	"testing"

	"github.com/clinvital/vitalis/internal/diet"
)

func TestGenerateHealthyPlan(t *testing.T) {
	plan := diet.Generate(nil)

	if !strings.Contains(plan.Overview, "Healthy Diet Recommendations") {
		t.Error("empty condition set should produce the healthy overview")
	}
	if !strings.Contains(plan.FoodsToEat, "Recommended Foods for Overall Health") {
		t.Error("empty condition set should produce the general foods list")
	}
	if !strings.Contains(plan.MealPlan, "Sample Meal Plan for Overall Health") {
		t.Error("empty condition set should produce the general meal plan")
	}
}

func TestGenerateConditionGuidanceIsAdditive(t *testing.T) {
	single := diet.Generate([]string{diet.Diabetes})
	combined := diet.Generate([]string{diet.Diabetes, diet.Hypertension})

	if !strings.Contains(single.FoodsToEat, "FOR DIABETES:") {
		t.Error("diabetes plan missing diabetes food guidance")
	}
	if strings.Contains(single.FoodsToEat, "FOR HYPERTENSION") {
		t.Error("diabetes plan should not carry hypertension guidance")
	}

	for _, section := range []string{"FOR DIABETES:", "FOR HYPERTENSION (DASH DIET):"} {
		if !strings.Contains(combined.FoodsToEat, section) {
			t.Errorf("combined plan missing section %q", section)
		}
	}
	for _, section := range []string{"FOR DIABETES:", "FOR HYPERTENSION:"} {
		if !strings.Contains(combined.FoodsToAvoid, section) {
			t.Errorf("combined avoid list missing section %q", section)
		}
	}
}

func TestGenerateOverviewListsConditions(t *testing.T) {
	plan := diet.Generate([]string{diet.Anemia, diet.KidneyDisease})

	if !strings.Contains(plan.Overview, "Anemia, Kidney Disease") {
		t.Error("overview should list the input conditions")
	}
	if !strings.Contains(plan.Overview, "For Anemia:") {
		t.Error("overview missing anemia guidance")
	}
	if !strings.Contains(plan.Overview, "For Kidney Disease:") {
		t.Error("overview missing kidney disease guidance")
	}
}

func TestGenerateMealPlanPriority(t *testing.T) {
	tests := []struct {
		name       string
		conditions []string
		marker     string
	}{
		{"anemia wins over hypertension", []string{diet.Hypertension, diet.Anemia}, "Iron-fortified cereal"},
		{"iron deficiency selects anemia plan", []string{diet.IronDeficiency}, "Iron-fortified cereal"},
		{"hypertension wins over diabetes", []string{diet.Diabetes, diet.Hypertension}, "Overnight oats"},
		{"diabetes wins over cardiac", []string{diet.HeartDisease, diet.Diabetes}, "Vegetable omelet"},
		{"high cholesterol selects cardiac plan", []string{diet.HighCholesterol}, "ground flaxseeds"},
		{"kidney disease alone", []string{diet.KidneyDisease}, "Egg whites"},
		{"unknown condition falls back to default", []string{"Gout"}, "Mediterranean quinoa bowl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := diet.Generate(tc.conditions)
			if !strings.Contains(plan.MealPlan, tc.marker) {
				t.Errorf("meal plan for %v missing marker %q", tc.conditions, tc.marker)
			}
			if !strings.Contains(plan.MealPlan, "NOTES:") {
				t.Error("meal plan missing closing notes")
			}
		})
	}
}

func TestGenerateStableAcrossInputOrder(t *testing.T) {
	a := diet.Generate([]string{diet.Diabetes, diet.Anemia, diet.HighCholesterol})
	b := diet.Generate([]string{diet.HighCholesterol, diet.Anemia, diet.Diabetes})

	if a.FoodsToEat != b.FoodsToEat {
		t.Error("foods to eat should not depend on condition order")
	}
	if a.FoodsToAvoid != b.FoodsToAvoid {
		t.Error("foods to avoid should not depend on condition order")
	}
	if a.MealPlan != b.MealPlan {
		t.Error("meal plan should not depend on condition order")
	}
}
