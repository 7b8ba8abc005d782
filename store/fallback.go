package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// PendingWindow is how long a pending manual-recovery snapshot stays
// available before it expires.
const PendingWindow = 5 * time.Minute

// PendingDownload is a write that only reached the local fallback. The
// admin UI surfaces it so an operator can download the JSON and
// reconcile the backend's file on disk by hand.
type PendingDownload struct {
	FileName string
	Content  []byte
	SavedAt  time.Time
}

// FallbackStore keeps last-known-good snapshots of each collection on
// local disk, used only when the backend is unreachable. It also tracks
// pending manual downloads, which auto-expire after PendingWindow.
type FallbackStore struct {
	dir string

	// Clock overrides time.Now in tests; leave nil for real time.
	Clock func() time.Time

	mu      sync.Mutex
	pending map[string]PendingDownload
}

// NewFallbackStore creates a FallbackStore rooted at dir
func NewFallbackStore(dir string) (*FallbackStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("fallback directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create fallback directory: %w", err)
	}
	return &FallbackStore{
		dir:     dir,
		pending: make(map[string]PendingDownload),
	}, nil
}

func (f *FallbackStore) now() time.Time {
	if f.Clock != nil {
		return f.Clock()
	}
	return time.Now()
}

func (f *FallbackStore) snapshotPath(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

// SaveSnapshot persists the collection locally and records a pending
// manual download for operator recovery.
func (f *FallbackStore) SaveSnapshot(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", collection, err)
	}

	if err := os.WriteFile(f.snapshotPath(collection), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", collection, err)
	}

	f.mu.Lock()
	f.pending[collection] = PendingDownload{
		FileName: collection + ".json",
		Content:  data,
		SavedAt:  f.now(),
	}
	f.mu.Unlock()

	log.Printf("💾 Fallback snapshot saved for %s (%d bytes), pending manual reconcile", collection, len(data))
	return nil
}

// LoadSnapshot reads the last-known-good snapshot into v. Returns false
// when no snapshot exists.
func (f *FallbackStore) LoadSnapshot(collection string, v interface{}) (bool, error) {
	data, err := os.ReadFile(f.snapshotPath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read snapshot %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse snapshot %s: %w", collection, err)
	}
	return true, nil
}

// Pending returns the not-yet-expired pending download for a collection
func (f *FallbackStore) Pending(collection string) (PendingDownload, bool) {
	f.expireLocked()
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pending[collection]
	return p, ok
}

// PendingCount returns how many collections have unexpired pending
// downloads, for the admin notification badge.
func (f *FallbackStore) PendingCount() int {
	f.expireLocked()
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// ClearPending drops the pending record once the operator reconciled it
func (f *FallbackStore) ClearPending(collection string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, collection)
}

// ExpireStale clears pending records older than PendingWindow
func (f *FallbackStore) ExpireStale() {
	f.expireLocked()
}

func (f *FallbackStore) expireLocked() {
	cutoff := f.now().Add(-PendingWindow)
	f.mu.Lock()
	defer f.mu.Unlock()
	for collection, p := range f.pending {
		if p.SavedAt.Before(cutoff) {
			delete(f.pending, collection)
			log.Printf("🕐 Pending download for %s expired", collection)
		}
	}
}
