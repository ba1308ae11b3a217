// Package store implements the JSON-document persistence layer. The whole
// application state lives in a single Document that is loaded at startup and
// rewritten to disk after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/seed"
)

// Store owns the in-memory document and serializes all access to it.
// Mutating methods hold the write lock for their whole read-modify-write
// span, so concurrent requests cannot lose updates.
type Store struct {
	path   string
	logger zerolog.Logger

	mu  sync.RWMutex
	doc models.Document
}

// Open loads the document at path into memory. A missing file or a document
// without courses is seeded with the example courses and persisted right away.
func Open(path string, lgr zerolog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: lgr.With().Str("component", "store").Logger(),
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.logger.Info().Str("path", path).Msg("Data file not found, starting from seed data")
	case err != nil:
		return nil, fmt.Errorf("failed to read data file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("failed to parse data file: %w", err)
		}
	}

	s.doc.Normalize()

	if len(s.doc.Courses) == 0 {
		s.doc.Courses = seed.Courses()
		s.logger.Info().Int("courses", len(s.doc.Courses)).Msg("Seeded example courses")
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Str("path", path).
		Int("courses", len(s.doc.Courses)).
		Int("users", len(s.doc.Users)).
		Int("notes", len(s.doc.CommunityNotes)).
		Msg("Document store loaded")

	return s, nil
}

// Snapshot returns a deep copy of the whole document.
func (s *Store) Snapshot() models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// persistLocked rewrites the whole document to disk. Callers must hold the
// write lock (or have exclusive access during Open).
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}
