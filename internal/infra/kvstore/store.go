// Package kvstore provides file-backed key-value preference storage.
// Each key is stored as one JSON file under the data directory,
// mirroring device preference storage: string keys, blob values,
// whole-value overwrites.
package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a file-per-key blob store rooted at a data directory.
type Store struct {
	dir string
}

// New creates a new Store rooted at dir. The directory does not need
// to exist; it is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Get returns the blob stored under key. The second return value is
// false if the key is absent or unreadable.
func (s *Store) Get(key string) ([]byte, bool) {
	content, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return nil, false
	}
	return content, true
}

// Set overwrites the blob stored under key.
func (s *Store) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return writeAtomic(s.keyPath(key), value, 0o600)
}

// Delete removes the blob stored under key. Deleting an absent key is
// not an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove key file: %w", err)
	}
	return nil
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// writeAtomic writes to a temp file and renames it into place so a
// crash mid-write never leaves a torn snapshot.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
