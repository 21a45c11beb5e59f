package predictions

// adviceBlocks maps detected conditions to follow-up guidance, evaluated in
// declaration order so combined output is stable.
var adviceBlocks = []struct {
	condition string
	lines     []string
}{
	{"Anemia", []string{
		"Consider iron supplements and include iron-rich foods in diet",
		"Schedule follow-up blood tests to monitor hemoglobin levels",
	}},
	{"Hypertension", []string{
		"Monitor blood pressure regularly",
		"Reduce sodium intake and maintain a heart-healthy diet",
		"Consider medication if lifestyle changes don't improve readings",
	}},
	{"Diabetes", []string{
		"Monitor blood glucose levels regularly",
		"Follow a controlled carbohydrate diet plan",
		"Consider consultation with an endocrinologist",
	}},
	{"Heart Disease", []string{
		"Schedule an appointment with a cardiologist",
		"Consider cardiac stress test and additional evaluations",
		"Follow a heart-healthy diet low in saturated fats",
	}},
	{"Vitamin D Deficiency", []string{
		"Take vitamin D supplements as directed",
		"Increase sun exposure (15-20 minutes daily if possible)",
	}},
	{"Kidney Disease", []string{
		"Consult a nephrologist for specialized care",
		"Monitor fluid intake and follow a kidney-friendly diet",
		"Schedule regular kidney function tests",
	}},
	{"High Cholesterol", []string{
		"Follow a low-cholesterol diet",
		"Increase physical activity",
		"Consider medication if levels remain elevated",
	}},
}

var healthyAdvice = []string{
	"Maintain a balanced diet and regular exercise routine for overall health.",
	"Schedule annual check-ups to monitor health status.",
}

// Advice returns follow-up guidance for the detected conditions. An empty
// set yields general wellness guidance.
func Advice(conditions []string) []string {
	set := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		set[c] = struct{}{}
	}

	var lines []string
	for _, block := range adviceBlocks {
		if _, ok := set[block.condition]; ok {
			lines = append(lines, block.lines...)
		}
	}

	if len(lines) == 0 {
		return append([]string(nil), healthyAdvice...)
	}
	return lines
}
