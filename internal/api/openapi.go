package api

import (
	"fmt"

	"github.com/clinvital/vitalis/pkg/openapi"
)

// buildSpec describes the API surface as an OpenAPI 3.1 document.
func buildSpec(basePath, version string) *openapi.Spec {
	spec := openapi.NewSpec("Vitalis API", version)
	spec.SetDescription("Clinic vital-signs capture, multi-label disease prediction, and diet guidance.")
	spec.AddServer(basePath)

	spec.AddSchemas(map[string]*openapi.Schema{
		"Patient": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string"},
				"age":        {Type: "integer"},
				"gender":     {Type: "string", Enum: []any{"Male", "Female", "Other"}},
				"vitals":     {Type: "object", Description: "Measured vital metrics keyed by metric name"},
				"diseases":   {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"PatientCommand": {
			Type:     "object",
			Required: []string{"name", "age", "gender"},
			Properties: map[string]*openapi.Schema{
				"name":   {Type: "string"},
				"age":    {Type: "integer"},
				"gender": {Type: "string"},
				"vitals": {Type: "object"},
			},
		},
		"Prediction": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"patient_id": {Type: "string", Format: "uuid"},
				"predicted":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"ranked": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"disease":     {Type: "string"},
							"probability": {Type: "number"},
						},
					},
				},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"Assessment": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"predicted":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"ranked":          {Type: "array"},
				"notable":         {Type: "array", Description: "Diseases with probability above 0.3"},
				"high_confidence": {Type: "array", Description: "Diseases with probability above 0.5"},
				"advice":          {Type: "string"},
			},
		},
		"PreviewCommand": {
			Type:     "object",
			Required: []string{"age"},
			Properties: map[string]*openapi.Schema{
				"age":    {Type: "integer"},
				"vitals": {Type: "object"},
			},
		},
		"DietRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"conditions": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"DietPlan": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"overview":       {Type: "string"},
				"foods_to_eat":   {Type: "string"},
				"foods_to_avoid": {Type: "string"},
				"meal_plan":      {Type: "string"},
			},
		},
		"TrainReport": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"records":    {Type: "integer"},
				"features":   {Type: "integer"},
				"vocabulary": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"VitalReference": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":     {Type: "string"},
				"unit":     {Type: "string"},
				"default":  {Type: "number"},
				"min":      {Type: "number"},
				"max":      {Type: "number"},
				"aliases":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"optional": {Type: "boolean"},
			},
		},
		"VitalReview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"vitals": {Type: "object", Description: "Measured values keyed by metric name"},
			},
		},
		"Measurement": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":   {Type: "string"},
				"value":  {Type: "number"},
				"unit":   {Type: "string"},
				"min":    {Type: "number"},
				"max":    {Type: "number"},
				"status": {Type: "string", Enum: []any{"low", "normal", "high", "unknown"}},
			},
		},
	})

	idParam := openapi.PathParam("id", "Record identifier")
	tagPatients := []string{"patients"}
	tagPredictions := []string{"predictions"}
	tagDiet := []string{"diet"}
	tagVitals := []string{"vitals"}

	spec.AddPath("/patients", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List patients",
			Tags:    tagPatients,
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Name or gender search", false),
				openapi.QueryParam("gender", "string", "Filter by gender", false),
				openapi.QueryParam("disease", "string", "Filter by recorded disease", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of patients", "Patient"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Register a patient",
			Tags:        tagPatients,
			RequestBody: openapi.RequestBodyJSON("PatientCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created patient", "Patient"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	})
	spec.AddPath("/patients/{id}", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a patient",
			Tags:       tagPatients,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Patient", "Patient"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Update a patient",
			Tags:        tagPatients,
			Parameters:  []*openapi.Parameter{idParam},
			RequestBody: openapi.RequestBodyJSON("PatientCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated patient", "Patient"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a patient",
			Tags:       tagPatients,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				204: {Description: "Deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	})
	spec.AddPath("/patients/search", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search patients",
			Tags:        tagPatients,
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of patients", "Patient"),
			},
		},
	})
	spec.AddPath("/patients/stats", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Population statistics",
			Tags:    tagPatients,
			Responses: map[int]*openapi.Response{
				200: {Description: "Aggregate counts over the patient population"},
			},
		},
	})
	spec.AddPath("/patients/import", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Import a CSV dataset",
			Description: "Multipart upload; the file goes in the \"dataset\" field.",
			Tags:        tagPatients,
			Responses: map[int]*openapi.Response{
				200: {Description: "Import result with per-row errors"},
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	})
	spec.AddPath("/patients/export", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Export all patients as CSV",
			Tags:    tagPatients,
			Responses: map[int]*openapi.Response{
				200: {Description: "CSV dataset"},
			},
		},
	})

	spec.AddPath("/predictions", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List predictions",
			Tags:    tagPredictions,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of predictions", "Prediction"),
			},
		},
	})
	spec.AddPath("/predictions/{id}", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a prediction",
			Tags:       tagPredictions,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Prediction", "Prediction"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a prediction",
			Tags:       tagPredictions,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				204: {Description: "Deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	})
	spec.AddPath("/predictions/{patientId}", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Predict for a stored patient",
			Description: "Runs inference, persists the prediction, and records the predicted diseases on the patient.",
			Tags:        tagPredictions,
			Parameters:  []*openapi.Parameter{openapi.PathParam("patientId", "Patient identifier")},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Prediction with assessment", "Assessment"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	})
	spec.AddPath("/predictions/patient/{id}", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Prediction history for a patient",
			Tags:       tagPredictions,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Predictions, newest first", "Prediction"),
			},
		},
	})
	spec.AddPath("/predictions/preview", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Predict without persisting",
			Tags:        tagPredictions,
			RequestBody: openapi.RequestBodyJSON("PreviewCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Assessment", "Assessment"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	})
	spec.AddPath("/predictions/train", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Retrain the model from stored patients",
			Tags:    tagPredictions,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Training report", "TrainReport"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	})

	spec.AddPath("/diet", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a diet plan from explicit conditions",
			Tags:        tagDiet,
			RequestBody: openapi.RequestBodyJSON("DietRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Diet plan", "DietPlan"),
			},
		},
	})
	spec.AddPath("/diet/patient/{id}", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Generate a diet plan from a patient's recorded conditions",
			Tags:       tagDiet,
			Parameters: []*openapi.Parameter{idParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Diet plan with conditions", "DietPlan"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	})

	spec.AddPath("/vitals", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Vital-sign reference ranges",
			Tags:    tagVitals,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Reference table", "VitalReference"),
			},
		},
	})
	spec.AddPath("/vitals/review", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Review measurements against reference ranges",
			Tags:        tagVitals,
			RequestBody: openapi.RequestBodyJSON("VitalReview", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Reviewed measurements", "Measurement"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	})

	return spec
}

// specBytes serializes the API document once at startup.
func specBytes(basePath, version string) ([]byte, error) {
	data, err := buildSpec(basePath, version).MarshalIndented()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
