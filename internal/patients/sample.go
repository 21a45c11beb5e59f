package patients

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Sample dataset generation mirrors the bootstrap data the desktop tool
// created on first run: vitals drawn from per-metric distributions, the
// disease set derived from fixed threshold rules, and a small chance of
// one extra random condition per patient.

var sampleFirstNames = []string{
	"John", "Jane", "Michael", "Emily", "David", "Sarah", "James",
	"Linda", "Robert", "Patricia", "William", "Susan", "Richard", "Jessica",
	"Thomas", "Jennifer", "Daniel", "Maria", "Matthew", "Lisa",
}

var sampleLastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White",
	"Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson",
}

var sampleDiseases = []string{
	"Anemia", "Hypertension", "Diabetes", "Heart Disease",
	"Vitamin D Deficiency", "Kidney Disease", "High Cholesterol",
	"Iron Deficiency", "Obesity", "Malnutrition",
}

// SampleDataset generates n synthetic patient records. Identical n and
// seed produce identical records, so a seeded dataset is reproducible.
func SampleDataset(n int, seed uint64) []Patient {
	rng := rand.New(rand.NewPCG(seed, 0))

	out := make([]Patient, 0, n)
	for range n {
		out = append(out, sampleRecord(rng))
	}
	return out
}

func sampleRecord(rng *rand.Rand) Patient {
	name := fmt.Sprintf("%s %s",
		sampleFirstNames[rng.IntN(len(sampleFirstNames))],
		sampleLastNames[rng.IntN(len(sampleLastNames))],
	)
	age := 18 + rng.IntN(68)

	gender := "Male"
	hemoglobinMean := 14.0
	if rng.IntN(2) == 1 {
		gender = "Female"
		hemoglobinMean = 13.0
	}

	vitals := map[string]float64{
		"Hemoglobin":   clamp(rng.NormFloat64()*2.0+hemoglobinMean, 8.0, 18.0),
		"BP_Systolic":  clamp(rng.NormFloat64()*20+120, 80, 200),
		"BP_Diastolic": clamp(rng.NormFloat64()*15+80, 50, 120),
		"Heart_Rate":   clamp(rng.NormFloat64()*15+75, 45, 120),
		"HbA1c":        clamp(rng.NormFloat64()*1.2+5.7, 4.0, 10.0),
		"Vitamin_D":    clamp(rng.NormFloat64()*10+30, 10.0, 50.0),
		"LDL":          clamp(rng.NormFloat64()*30+100, 50.0, 200.0),
		"Iron":         clamp(rng.NormFloat64()*30+100, 30.0, 180.0),
		"Creatinine":   clamp(rng.NormFloat64()*0.5+1.0, 0.5, 3.0),
		"MCH":          clamp(rng.NormFloat64()*2.0+29.0, 20.0, 40.0),
		"MCHC":         clamp(rng.NormFloat64()*2.0+33.0, 30.0, 38.0),
		"CRP":          clamp(rng.ExpFloat64()*2.0, 0.0, 50.0),
	}

	diseases := sampleConditions(vitals)
	if rng.Float64() < 0.1 {
		extra := sampleDiseases[rng.IntN(len(sampleDiseases))]
		if !slices.Contains(diseases, extra) {
			diseases = append(diseases, extra)
		}
	}

	return Patient{
		Name:     name,
		Age:      age,
		Gender:   gender,
		Vitals:   vitals,
		Diseases: diseases,
	}
}

// sampleConditions derives a record's diseases from its vitals using the
// same threshold rules the bootstrap dataset was labeled with.
func sampleConditions(vitals map[string]float64) []string {
	var out []string

	if vitals["Hemoglobin"] < 12.0 || vitals["Iron"] < 60.0 {
		out = append(out, "Anemia")
	}
	if vitals["BP_Systolic"] > 140 || vitals["BP_Diastolic"] > 90 {
		out = append(out, "Hypertension")
	}
	if vitals["HbA1c"] > 6.5 {
		out = append(out, "Diabetes")
	}
	if vitals["Heart_Rate"] < 50 || vitals["Heart_Rate"] > 100 {
		out = append(out, "Heart Disease")
	}
	if vitals["Vitamin_D"] < 20.0 {
		out = append(out, "Vitamin D Deficiency")
	}
	if vitals["Creatinine"] > 1.5 {
		out = append(out, "Kidney Disease")
	}
	if vitals["LDL"] > 130.0 {
		out = append(out, "High Cholesterol")
	}

	return out
}

func clamp(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}
