package config_test

import (
	"testing"

	"github.com/clinvital/vitalis/internal/config"
	"github.com/clinvital/vitalis/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VITALIS_DB_NAME", "vitalis_test")
	t.Setenv("VITALIS_DB_USER", "vitalis")
	t.Setenv("VITALIS_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config file failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"server addr", cfg.Server.Addr(), "0.0.0.0:8080"},
		{"shutdown timeout", cfg.ShutdownTimeout, "30s"},
		{"api base path", cfg.API.BasePath, "/api"},
		{"model trees", cfg.Model.Trees, 100},
		{"model max depth", cfg.Model.MaxDepth, 10},
		{"model min samples split", cfg.Model.MinSamplesSplit, 2},
		{"model seed", cfg.Model.Seed, int64(42)},
		{"artifact prefix", cfg.Model.ArtifactPrefix, "models/current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	if cfg.Model.Params() != model.DefaultParams() {
		t.Errorf("model params %+v, expected defaults", cfg.Model.Params())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VITALIS_DB_NAME", "vitalis_test")
	t.Setenv("VITALIS_DB_USER", "vitalis")
	t.Setenv("VITALIS_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("VITALIS_SERVER_PORT", "9090")
	t.Setenv("VITALIS_MODEL_TREES", "50")
	t.Setenv("VITALIS_MODEL_SEED", "7")
	t.Setenv("VITALIS_MODEL_ARTIFACT_PREFIX", "models/staging")
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Model.Trees != 50 {
		t.Errorf("trees = %d, want 50", cfg.Model.Trees)
	}
	if cfg.Model.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Model.Seed)
	}
	if cfg.Model.ArtifactPrefix != "models/staging" {
		t.Errorf("artifact prefix = %q, want models/staging", cfg.Model.ArtifactPrefix)
	}
}

func TestModelConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ModelConfig
	}{
		{"negative trees", config.ModelConfig{Trees: -1}},
		{"negative depth", config.ModelConfig{MaxDepth: -3}},
		{"min samples below two", config.ModelConfig{MinSamplesSplit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
