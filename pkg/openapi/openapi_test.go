package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinvital/vitalis/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Vitalis API", "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Vitalis API" {
		t.Errorf("title: got %s, want Vitalis API", spec.Info.Title)
	}
	if spec.Components == nil {
		t.Fatal("components should not be nil")
	}
	if spec.Paths == nil {
		t.Fatal("paths should not be nil")
	}
}

func TestAddPathAndSchemas(t *testing.T) {
	spec := openapi.NewSpec("Vitalis API", "0.1.0")
	spec.AddServer("/api")
	spec.AddSchemas(map[string]*openapi.Schema{
		"Patient": {Type: "object"},
	})
	spec.AddPath("/patients", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List patients",
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of patients", "Patient"),
			},
		},
	})

	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api" {
		t.Errorf("unexpected servers: %+v", spec.Servers)
	}
	if _, ok := spec.Components.Schemas["Patient"]; !ok {
		t.Error("Patient schema missing")
	}
	if _, ok := spec.Components.Schemas["PageRequest"]; !ok {
		t.Error("default PageRequest schema missing")
	}
	if spec.Paths["/patients"].Get.Summary != "List patients" {
		t.Error("path operation not registered")
	}
}

func TestSchemaRef(t *testing.T) {
	ref := openapi.SchemaRef("Prediction")
	if ref.Ref != "#/components/schemas/Prediction" {
		t.Errorf("schema ref: got %s", ref.Ref)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	spec := openapi.NewSpec("Vitalis API", "0.1.0")
	data, err := spec.MarshalIndented()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["openapi"] != "3.1.0" {
		t.Errorf("decoded version: got %v", decoded["openapi"])
	}
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec("Vitalis API", "0.1.0")
	data, err := spec.MarshalIndented()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	srv := httptest.NewServer(openapi.ServeSpec(data))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type: got %s", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != string(data) {
		t.Error("served body does not match spec bytes")
	}
}
