// Package filestore persists the dataset snapshot as a single JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

type document struct {
	Key   string             `json:"key"`
	Entry *domain.CacheEntry `json:"entry"`
}

// Store keeps one CacheEntry in a JSON file. Writes go to a temporary file
// in the same directory and are renamed into place, so readers never see a
// partial document.
type Store struct {
	path string
	key  string
	mu   sync.Mutex
}

// New creates a Store backed by path. The parent directory is created on
// first save.
func New(path string) *Store {
	return &Store{path: path, key: domain.CacheKey}
}

// Load returns the stored entry or domain.ErrNotFound when there is none.
// A file written under a different key counts as absent.
func (s *Store) Load(ctx context.Context) (*domain.CacheEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cache file %s: %w", s.path, err)
	}
	if doc.Key != s.key || doc.Entry == nil {
		return nil, domain.ErrNotFound
	}
	return doc.Entry, nil
}

// Save replaces the stored entry.
func (s *Store) Save(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return errors.New("save cache: nil entry")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(document{Key: s.key, Entry: entry})
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// Clear removes the stored entry. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}
