package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clinvital/vitalis/internal/model"
)

const (
	EnvModelTrees           = "VITALIS_MODEL_TREES"
	EnvModelMaxDepth        = "VITALIS_MODEL_MAX_DEPTH"
	EnvModelMinSamplesSplit = "VITALIS_MODEL_MIN_SAMPLES_SPLIT"
	EnvModelSeed            = "VITALIS_MODEL_SEED"
	EnvModelArtifactPrefix  = "VITALIS_MODEL_ARTIFACT_PREFIX"
)

// ModelConfig holds training hyperparameters and artifact placement.
type ModelConfig struct {
	Trees           int    `toml:"trees"`
	MaxDepth        int    `toml:"max_depth"`
	MinSamplesSplit int    `toml:"min_samples_split"`
	Seed            int64  `toml:"seed"`
	ArtifactPrefix  string `toml:"artifact_prefix"`
}

// Params returns the finalized values as model training parameters.
func (c *ModelConfig) Params() model.Params {
	return model.Params{
		Trees:           c.Trees,
		MaxDepth:        c.MaxDepth,
		MinSamplesSplit: c.MinSamplesSplit,
		Seed:            c.Seed,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ModelConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ModelConfig) Merge(overlay *ModelConfig) {
	if overlay.Trees != 0 {
		c.Trees = overlay.Trees
	}
	if overlay.MaxDepth != 0 {
		c.MaxDepth = overlay.MaxDepth
	}
	if overlay.MinSamplesSplit != 0 {
		c.MinSamplesSplit = overlay.MinSamplesSplit
	}
	if overlay.Seed != 0 {
		c.Seed = overlay.Seed
	}
	if overlay.ArtifactPrefix != "" {
		c.ArtifactPrefix = overlay.ArtifactPrefix
	}
}

func (c *ModelConfig) loadDefaults() {
	defaults := model.DefaultParams()
	if c.Trees == 0 {
		c.Trees = defaults.Trees
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = defaults.MaxDepth
	}
	if c.MinSamplesSplit == 0 {
		c.MinSamplesSplit = defaults.MinSamplesSplit
	}
	if c.Seed == 0 {
		c.Seed = defaults.Seed
	}
	if c.ArtifactPrefix == "" {
		c.ArtifactPrefix = "models/current"
	}
}

func (c *ModelConfig) loadEnv() {
	if v := os.Getenv(EnvModelTrees); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Trees = n
		}
	}
	if v := os.Getenv(EnvModelMaxDepth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDepth = n
		}
	}
	if v := os.Getenv(EnvModelMinSamplesSplit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinSamplesSplit = n
		}
	}
	if v := os.Getenv(EnvModelSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv(EnvModelArtifactPrefix); v != "" {
		c.ArtifactPrefix = v
	}
}

func (c *ModelConfig) validate() error {
	if c.Trees < 1 {
		return fmt.Errorf("invalid trees: %d", c.Trees)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("invalid max_depth: %d", c.MaxDepth)
	}
	if c.MinSamplesSplit < 2 {
		return fmt.Errorf("invalid min_samples_split: %d", c.MinSamplesSplit)
	}
	return nil
}
