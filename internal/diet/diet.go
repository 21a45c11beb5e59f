// Package diet generates dietary guidance from a patient's detected health
// conditions. Plans are assembled from fixed content blocks; there is no
// model involvement, so generation is deterministic and side-effect free.
package diet

import "strings"

// Condition names the generator recognizes. Unknown conditions are carried
// in the overview listing but contribute no specific guidance.
const (
	Anemia             = "Anemia"
	IronDeficiency     = "Iron Deficiency"
	Hypertension       = "Hypertension"
	Diabetes           = "Diabetes"
	HeartDisease       = "Heart Disease"
	VitaminDDeficiency = "Vitamin D Deficiency"
	KidneyDisease      = "Kidney Disease"
	HighCholesterol    = "High Cholesterol"
)

// Plan is a complete set of dietary guidance for one patient.
type Plan struct {
	Overview     string `json:"overview"`
	FoodsToEat   string `json:"foods_to_eat"`
	FoodsToAvoid string `json:"foods_to_avoid"`
	MealPlan     string `json:"meal_plan"`
}

// conditionSet answers membership queries without caring about duplicates.
type conditionSet map[string]struct{}

func newConditionSet(conditions []string) conditionSet {
	set := make(conditionSet, len(conditions))
	for _, c := range conditions {
		set[c] = struct{}{}
	}
	return set
}

func (s conditionSet) has(condition string) bool {
	_, ok := s[condition]
	return ok
}

// Generate builds a plan for the given conditions. An empty set produces the
// general healthy-diet plan; otherwise per-condition guidance blocks are
// appended in a fixed order so output is stable regardless of input order.
func Generate(conditions []string) Plan {
	if len(conditions) == 0 {
		return Plan{
			Overview:     healthyOverview,
			FoodsToEat:   healthyFoodsToEat,
			FoodsToAvoid: healthyFoodsToAvoid,
			MealPlan:     healthyMealPlan,
		}
	}

	set := newConditionSet(conditions)

	return Plan{
		Overview:     buildOverview(conditions, set),
		FoodsToEat:   buildFoodsToEat(set),
		FoodsToAvoid: buildFoodsToAvoid(set),
		MealPlan:     buildMealPlan(set),
	}
}

func buildOverview(conditions []string, set conditionSet) string {
	var b strings.Builder

	b.WriteString("Personalized Diet Recommendations\n\n")
	b.WriteString("Based on your health assessment, a customized diet plan has been created to address your specific health conditions:\n")
	b.WriteString(strings.Join(conditions, ", "))
	b.WriteString("\n\nThe dietary recommendations aim to:\n")
	b.WriteString("• Help manage your current health conditions\n")
	b.WriteString("• Provide necessary nutrients for your body\n")
	b.WriteString("• Support your overall wellbeing\n")
	b.WriteString("• Potentially reduce symptoms associated with your conditions\n\n")
	b.WriteString("Following these recommendations may help improve your markers over time, but they should be used in conjunction with any treatments prescribed by your healthcare provider.\n\n")
	b.WriteString("Please consult with your healthcare provider or a registered dietitian before making significant changes to your diet.\n")

	for _, block := range overviewBlocks {
		if set.has(block.condition) {
			b.WriteString("\n")
			b.WriteString(block.text)
		}
	}

	return b.String()
}

func buildFoodsToEat(set conditionSet) string {
	var b strings.Builder

	b.WriteString("RECOMMENDED FOODS\n\n")
	b.WriteString(generalFoodsToEat)

	for _, block := range foodsToEatBlocks {
		if set.has(block.condition) {
			b.WriteString(block.text)
		}
	}

	return b.String()
}

func buildFoodsToAvoid(set conditionSet) string {
	var b strings.Builder

	b.WriteString("FOODS TO LIMIT OR AVOID\n\n")
	b.WriteString(generalFoodsToAvoid)

	for _, block := range foodsToAvoidBlocks {
		if set.has(block.condition) {
			b.WriteString(block.text)
		}
	}

	return b.String()
}

// buildMealPlan picks exactly one sample meal plan. Anemia and iron
// deficiency take priority over everything else, then hypertension,
// diabetes, cardiac conditions, and kidney disease, falling back to the
// general plan.
func buildMealPlan(set conditionSet) string {
	var meals string

	switch {
	case set.has(Anemia) || set.has(IronDeficiency):
		meals = anemiaMeals
	case set.has(Hypertension):
		meals = hypertensionMeals
	case set.has(Diabetes):
		meals = diabetesMeals
	case set.has(HeartDisease) || set.has(HighCholesterol):
		meals = cardiacMeals
	case set.has(KidneyDisease):
		meals = kidneyMeals
	default:
		meals = defaultMeals
	}

	return meals + mealPlanNotes
}
