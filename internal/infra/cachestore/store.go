// Package cachestore persists one JSON cache entry per dataset under a
// single base directory, plus the refresh run summary.
//
// The store exclusively owns the entry files. Writes are atomic: entries
// are serialized to a temp file in the same directory and renamed into
// place, so readers never observe a partially written file.
package cachestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ruraldata/internal/domain/entity"
)

// SummaryFileName is the on-disk name of the refresh run summary.
const SummaryFileName = "update-summary.json"

// Store reads and writes dataset cache entries under a base directory.
// Each source key gets its own file ({key}.json), so sources never
// contend on the same file.
//
// Clock is injectable to keep staleness checks testable; it defaults to
// time.Now.
type Store struct {
	dir   string
	Clock func() time.Time
}

// NewStore creates a Store rooted at dir. The directory is created if it
// does not exist. The base path is always injected by the caller, never
// inferred from the runtime environment.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cachestore: base directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	return &Store{dir: dir, Clock: time.Now}, nil
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string { return s.dir }

// Write serializes a new CacheEntry for the source key with
// LastUpdated = now and persists it atomically, replacing any previous
// entry wholesale.
func (s *Store) Write(key, sourceURL string, records []entity.Record) (*entity.CacheEntry, error) {
	entry := &entity.CacheEntry{
		Data:        records,
		LastUpdated: s.Clock().UTC(),
		Source:      sourceURL,
		Count:       len(records),
	}
	if err := s.writeJSON(s.entryPath(key), entry); err != nil {
		return nil, fmt.Errorf("write cache entry for %s: %w", key, err)
	}
	return entry, nil
}

// Read loads the CacheEntry for the source key.
//
// A missing file yields ErrCacheMiss. A file that exists but cannot be
// deserialized, or whose count invariant is violated, yields
// ErrCacheCorrupt; readers treat both the same way.
func (s *Store) Read(key string) (*entity.CacheEntry, error) {
	raw, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", entity.ErrCacheMiss, key)
		}
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrCacheMiss, key, err)
	}

	var entry entity.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrCacheCorrupt, key, err)
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrCacheCorrupt, key, err)
	}
	return &entry, nil
}

// IsStale reports whether the entry is older than maxAge.
func (s *Store) IsStale(entry *entity.CacheEntry, maxAge time.Duration) bool {
	return entry.Age(s.Clock()) > maxAge
}

// WriteSummary persists the refresh run summary, rewritten in full after
// each orchestration run.
func (s *Store) WriteSummary(summary *entity.RefreshSummary) error {
	if err := s.writeJSON(filepath.Join(s.dir, SummaryFileName), summary); err != nil {
		return fmt.Errorf("write refresh summary: %w", err)
	}
	return nil
}

// ReadSummary loads the last persisted refresh summary. Returns
// ErrCacheMiss when no run has completed yet.
func (s *Store) ReadSummary() (*entity.RefreshSummary, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, SummaryFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: refresh summary", entity.ErrCacheMiss)
		}
		return nil, fmt.Errorf("read refresh summary: %w", err)
	}
	var summary entity.RefreshSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("%w: refresh summary: %v", entity.ErrCacheCorrupt, err)
	}
	return &summary, nil
}

// writeJSON marshals v and renames a temp file into place. The temp file
// lives in the target directory so the rename stays on one filesystem.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// entryPath maps a source key to its cache file, stripping path
// separators so a hostile key cannot escape the cache directory.
func (s *Store) entryPath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
