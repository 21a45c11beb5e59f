package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/clinvital/vitalis/pkg/storage"
)

// Artifact blob names under the store prefix. The three artifacts form one
// logical model; a load with any of them missing resolves to
// ErrModelUnavailable rather than a partial model.
const (
	scalerBlob     = "scaler.json"
	estimatorsBlob = "estimators.json"
	vocabularyBlob = "vocabulary.json"
)

const artifactContentType = "application/json"

// Store persists trained models as a triple of JSON blobs.
type Store struct {
	storage storage.System
	prefix  string
}

// NewStore creates an artifact store writing under the given key prefix,
// e.g. "models/current".
func NewStore(system storage.System, prefix string) *Store {
	return &Store{storage: system, prefix: prefix}
}

// estimatorsArtifact carries everything beyond the scaler and vocabulary
// needed to reconstruct inference: schema, estimators, and the parameters
// they were trained with.
type estimatorsArtifact struct {
	Schema     []string  `json:"schema"`
	Estimators []*Forest `json:"estimators"`
	Params     Params    `json:"params"`
}

// Save uploads all three artifacts. A save interrupted between uploads can
// leave the store inconsistent; Load detects that and reports the model
// unavailable or corrupted rather than serving a mismatched triple.
func (s *Store) Save(ctx context.Context, m *Model) error {
	if err := m.Validate(); err != nil {
		return err
	}

	artifacts := map[string]any{
		scalerBlob:     m.Scaler,
		vocabularyBlob: m.Vocabulary,
		estimatorsBlob: estimatorsArtifact{
			Schema:     m.Schema,
			Estimators: m.Estimators,
			Params:     m.Params,
		},
	}

	for name, value := range artifacts {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}

		key := s.key(name)
		if err := s.storage.Upload(ctx, key, bytes.NewReader(data), artifactContentType); err != nil {
			return fmt.Errorf("save artifact %s: %w", key, err)
		}
	}

	return nil
}

// Load downloads and reassembles the artifact triple. Missing blobs map to
// ErrModelUnavailable; blobs that decode but fail structural validation map
// to ErrModelCorrupted.
func (s *Store) Load(ctx context.Context) (*Model, error) {
	var scaler Scaler
	if err := s.load(ctx, scalerBlob, &scaler); err != nil {
		return nil, err
	}

	var vocabulary []string
	if err := s.load(ctx, vocabularyBlob, &vocabulary); err != nil {
		return nil, err
	}

	var artifact estimatorsArtifact
	if err := s.load(ctx, estimatorsBlob, &artifact); err != nil {
		return nil, err
	}

	m := &Model{
		Schema:     artifact.Schema,
		Scaler:     &scaler,
		Vocabulary: vocabulary,
		Estimators: artifact.Estimators,
		Params:     artifact.Params,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Exists reports whether a complete artifact triple is present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	for _, name := range []string{scalerBlob, estimatorsBlob, vocabularyBlob} {
		ok, err := s.storage.Exists(ctx, s.key(name))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Delete removes all artifacts, tolerating ones already absent.
func (s *Store) Delete(ctx context.Context) error {
	for _, name := range []string{scalerBlob, estimatorsBlob, vocabularyBlob} {
		if err := s.storage.Delete(ctx, s.key(name)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Store) load(ctx context.Context, name string, target any) error {
	key := s.key(name)

	reader, err := s.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: artifact %s missing", ErrModelUnavailable, key)
		}
		return fmt.Errorf("load artifact %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", key, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: artifact %s: %v", ErrModelCorrupted, key, err)
	}

	return nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}
