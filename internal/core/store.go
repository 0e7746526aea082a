package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store persists the whole business document as a single JSON file.
//
// Every save fully overwrites the prior content: there is no versioning and no
// optimistic concurrency token. Writers within one process are serialized by
// the application service; a second process writing the same file loses the
// race (last write wins). That limitation is accepted under the single-writer
// assumption this system is designed for.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore constructs a Store backed by the given file path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and normalizes the full document. A missing file yields the seed
// document; a file that fails to parse also yields the seed document (the
// corrupt content is overwritten on the next save). Sections that are absent
// or not lists — including an explicit null — come back as their seed
// counterparts, per Normalize. Only genuine I/O faults, such as a permission
// error, are returned as errors.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultDocument(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).
			Msg("document is corrupt, falling back to seed data")
		return DefaultDocument(), nil
	}

	doc, coercions := Normalize(raw)
	for _, c := range coercions {
		s.log.Warn().
			Str("section", c.Section).
			Str("record", c.Record).
			Str("field", c.Field).
			Interface("raw", c.Raw).
			Msg("coerced malformed field during load")
	}
	return doc, nil
}

// Save serializes the full document back to disk with human-readable
// indentation, creating the containing directory if needed. Nil collection
// slices are written as empty lists: a null section in the file would read
// back as absent and be replaced with seed data on the next Load.
func (s *Store) Save(ctx context.Context, doc *Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	doc.ensureCollections()
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
