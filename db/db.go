package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each collection as one pretty-printed JSON file under
// a data directory. Every write replaces the whole file; a store-wide
// mutex serializes writers inside this process. Across processes the
// semantics are last write wins.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// New creates a FileStore rooted at dir, creating the directory if needed
func New(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	log.Printf("✓ Data store initialized at %s", dir)
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) pathFor(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read unmarshals the named collection into v. A missing file is not an
// error: v is left at its zero value and Read returns false.
func (s *FileStore) Read(collection string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pathFor(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse collection %s: %w", collection, err)
	}
	return true, nil
}

// Write replaces the named collection with the JSON serialization of v.
// The write goes through a temp file and rename so a crash mid-write
// never leaves a truncated collection behind.
func (s *FileStore) Write(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", collection, err)
	}

	target := s.pathFor(collection)
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", collection, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}

// Exists reports whether the named collection has been written
func (s *FileStore) Exists(collection string) bool {
	_, err := os.Stat(s.pathFor(collection))
	return err == nil
}
