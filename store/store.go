package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"optica-vista-me/models"
	"optica-vista-me/utils"
)

// Collection names used for cache slots, snapshots and update signals
const (
	CollectionFrames     = "frames"
	CollectionSunglasses = "sunglasses"
	CollectionCompany    = "company"
)

// ImageReleaser releases the backing file of a stored image. Releases
// are best-effort: failures are reported to the caller for recording but
// never block the record operation that triggered them.
type ImageReleaser interface {
	ReleaseImage(ctx context.Context, imagePath string) error
}

// CatalogStore is the client-side data store for the catalog. It owns one
// cache slot per collection, reads through to the REST backend, and falls
// back to local snapshots when the backend is unreachable. Reads never
// surface transport errors to the caller.
type CatalogStore struct {
	client   *Client
	fallback *FallbackStore
	releaser ImageReleaser

	mu               sync.Mutex
	frames           []models.Frame
	framesCached     bool
	sunglasses       []models.Sunglasses
	sunglassesCached bool
	company          *models.CompanyProfile
	companyCached    bool
}

// NewCatalogStore creates a CatalogStore. A nil releaser defaults to the
// backend's delete-image endpoint.
func NewCatalogStore(client *Client, fallback *FallbackStore, releaser ImageReleaser) *CatalogStore {
	if releaser == nil {
		releaser = client
	}
	return &CatalogStore{
		client:   client,
		fallback: fallback,
		releaser: releaser,
	}
}

// Invalidate drops the cache slot for one collection, forcing the next
// read to refetch. Save calls it on success so multi-tab state cannot
// silently diverge; there is no cross-slot invalidation.
func (s *CatalogStore) Invalidate(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch collection {
	case CollectionFrames:
		s.framesCached = false
		s.frames = nil
	case CollectionSunglasses:
		s.sunglassesCached = false
		s.sunglasses = nil
	case CollectionCompany:
		s.companyCached = false
		s.company = nil
	}
}

// PendingDownloads exposes the fallback store's pending manual-recovery
// records for the admin notification affordance.
func (s *CatalogStore) PendingDownloads() *FallbackStore {
	return s.fallback
}

// GetFrames returns the frames collection: cache first, then backend,
// then local snapshot, then empty. It never fails the caller.
func (s *CatalogStore) GetFrames(ctx context.Context) []models.Frame {
	s.mu.Lock()
	if s.framesCached {
		cached := make([]models.Frame, len(s.frames))
		copy(cached, s.frames)
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	frames, err := s.client.FetchFrames(ctx)
	if err != nil {
		log.Printf("⚠️  Frames fetch failed, using local fallback: %v", err)
		var snapshot []models.Frame
		if found, snapErr := s.fallback.LoadSnapshot(CollectionFrames, &snapshot); snapErr != nil || !found {
			return []models.Frame{}
		}
		return snapshot
	}
	if frames == nil {
		frames = []models.Frame{}
	}

	s.mu.Lock()
	s.frames = frames
	s.framesCached = true
	s.mu.Unlock()

	out := make([]models.Frame, len(frames))
	copy(out, frames)
	return out
}

// GetSunglasses returns the sunglasses collection with the same
// cache/fallback semantics as GetFrames.
func (s *CatalogStore) GetSunglasses(ctx context.Context) []models.Sunglasses {
	s.mu.Lock()
	if s.sunglassesCached {
		cached := make([]models.Sunglasses, len(s.sunglasses))
		copy(cached, s.sunglasses)
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	items, err := s.client.FetchSunglasses(ctx)
	if err != nil {
		log.Printf("⚠️  Sunglasses fetch failed, using local fallback: %v", err)
		var snapshot []models.Sunglasses
		if found, snapErr := s.fallback.LoadSnapshot(CollectionSunglasses, &snapshot); snapErr != nil || !found {
			return []models.Sunglasses{}
		}
		return snapshot
	}
	if items == nil {
		items = []models.Sunglasses{}
	}

	s.mu.Lock()
	s.sunglasses = items
	s.sunglassesCached = true
	s.mu.Unlock()

	out := make([]models.Sunglasses, len(items))
	copy(out, items)
	return out
}

// GetCompany returns the company profile, or nil when neither the
// backend nor a local snapshot has one.
func (s *CatalogStore) GetCompany(ctx context.Context) *models.CompanyProfile {
	s.mu.Lock()
	if s.companyCached {
		cached := s.company
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	profile, err := s.client.FetchCompany(ctx)
	if err != nil {
		log.Printf("⚠️  Company fetch failed, using local fallback: %v", err)
		var snapshot models.CompanyProfile
		if found, snapErr := s.fallback.LoadSnapshot(CollectionCompany, &snapshot); snapErr != nil || !found {
			return nil
		}
		return &snapshot
	}

	s.mu.Lock()
	s.company = profile
	s.companyCached = true
	s.mu.Unlock()
	return profile
}

// SaveFrames optimistically replaces the cache, then pushes the whole
// collection to the backend. On backend failure the collection is
// captured in the local fallback plus a pending manual download; the
// outcome tells the caller which durability level was reached.
func (s *CatalogStore) SaveFrames(ctx context.Context, frames []models.Frame) SaveOutcome {
	// Normalize a copy; the caller's slice stays untouched.
	frames = append([]models.Frame(nil), frames...)
	for i := range frames {
		frames[i].NormalizeImages()
	}

	s.mu.Lock()
	s.frames = frames
	s.framesCached = true
	s.mu.Unlock()

	if err := s.client.PostFrames(ctx, frames); err != nil {
		log.Printf("⚠️  Frames save failed, falling back locally: %v", err)
		if snapErr := s.fallback.SaveSnapshot(CollectionFrames, frames); snapErr != nil {
			log.Printf("❌ Frames fallback save also failed: %v", snapErr)
			return SaveFailed
		}
		return SaveFellBack
	}

	s.Invalidate(CollectionFrames)
	return SavePersisted
}

// SaveSunglasses mirrors SaveFrames for the sunglasses collection
func (s *CatalogStore) SaveSunglasses(ctx context.Context, items []models.Sunglasses) SaveOutcome {
	items = append([]models.Sunglasses(nil), items...)
	for i := range items {
		items[i].NormalizeImages()
	}

	s.mu.Lock()
	s.sunglasses = items
	s.sunglassesCached = true
	s.mu.Unlock()

	if err := s.client.PostSunglasses(ctx, items); err != nil {
		log.Printf("⚠️  Sunglasses save failed, falling back locally: %v", err)
		if snapErr := s.fallback.SaveSnapshot(CollectionSunglasses, items); snapErr != nil {
			log.Printf("❌ Sunglasses fallback save also failed: %v", snapErr)
			return SaveFailed
		}
		return SaveFellBack
	}

	s.Invalidate(CollectionSunglasses)
	return SavePersisted
}

// SaveCompany mirrors SaveFrames for the company singleton
func (s *CatalogStore) SaveCompany(ctx context.Context, profile models.CompanyProfile) SaveOutcome {
	s.mu.Lock()
	s.company = &profile
	s.companyCached = true
	s.mu.Unlock()

	if err := s.client.PostCompany(ctx, profile); err != nil {
		log.Printf("⚠️  Company save failed, falling back locally: %v", err)
		if snapErr := s.fallback.SaveSnapshot(CollectionCompany, profile); snapErr != nil {
			log.Printf("❌ Company fallback save also failed: %v", snapErr)
			return SaveFailed
		}
		return SaveFellBack
	}

	s.Invalidate(CollectionCompany)
	return SavePersisted
}

// CreateFrame assigns a new id, appends the frame to the collection and
// saves. Returns nil when the save reached no durable path.
func (s *CatalogStore) CreateFrame(ctx context.Context, frame models.Frame) *models.Frame {
	frames := s.GetFrames(ctx)

	frame.ID = uuid.NewString()
	frame.NormalizeImages()
	frames = append(frames, frame)

	if !s.SaveFrames(ctx, frames).Durable() {
		return nil
	}
	return &frame
}

// UpdateFrame merges partial fields onto the record. Images dropped by
// the update are released best-effort; their failures are reported in
// SideEffectErrors without failing the update.
func (s *CatalogStore) UpdateFrame(ctx context.Context, id string, req models.FrameUpdateRequest) MutationResult {
	frames := s.GetFrames(ctx)

	idx := -1
	for i := range frames {
		if frames[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MutationResult{PrimaryOK: false, Outcome: SaveFailed}
	}

	oldImages := frames[idx].Images
	req.ApplyTo(&frames[idx])
	newImages := frames[idx].Images

	outcome := s.SaveFrames(ctx, frames)
	result := MutationResult{PrimaryOK: outcome.Durable(), Outcome: outcome}
	if !result.PrimaryOK {
		return result
	}

	result.SideEffectErrors = s.releaseImages(ctx, droppedImages(oldImages, newImages))
	return result
}

// DeleteFrame removes the record and releases every image it owned. The
// record is removed even when every release fails.
func (s *CatalogStore) DeleteFrame(ctx context.Context, id string) MutationResult {
	frames := s.GetFrames(ctx)

	idx := -1
	for i := range frames {
		if frames[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MutationResult{PrimaryOK: false, Outcome: SaveFailed}
	}

	owned := frames[idx].Images
	frames = append(frames[:idx], frames[idx+1:]...)

	outcome := s.SaveFrames(ctx, frames)
	result := MutationResult{PrimaryOK: outcome.Durable(), Outcome: outcome}
	if !result.PrimaryOK {
		return result
	}

	result.SideEffectErrors = s.releaseImages(ctx, owned)
	return result
}

// CreateSunglasses mirrors CreateFrame for the sunglasses collection
func (s *CatalogStore) CreateSunglasses(ctx context.Context, item models.Sunglasses) *models.Sunglasses {
	items := s.GetSunglasses(ctx)

	item.ID = uuid.NewString()
	item.NormalizeImages()
	items = append(items, item)

	if !s.SaveSunglasses(ctx, items).Durable() {
		return nil
	}
	return &item
}

// UpdateSunglasses mirrors UpdateFrame for the sunglasses collection
func (s *CatalogStore) UpdateSunglasses(ctx context.Context, id string, req models.SunglassesUpdateRequest) MutationResult {
	items := s.GetSunglasses(ctx)

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MutationResult{PrimaryOK: false, Outcome: SaveFailed}
	}

	oldImages := items[idx].Images
	req.ApplyTo(&items[idx])
	newImages := items[idx].Images

	outcome := s.SaveSunglasses(ctx, items)
	result := MutationResult{PrimaryOK: outcome.Durable(), Outcome: outcome}
	if !result.PrimaryOK {
		return result
	}

	result.SideEffectErrors = s.releaseImages(ctx, droppedImages(oldImages, newImages))
	return result
}

// DeleteSunglasses mirrors DeleteFrame for the sunglasses collection
func (s *CatalogStore) DeleteSunglasses(ctx context.Context, id string) MutationResult {
	items := s.GetSunglasses(ctx)

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MutationResult{PrimaryOK: false, Outcome: SaveFailed}
	}

	owned := items[idx].Images
	items = append(items[:idx], items[idx+1:]...)

	outcome := s.SaveSunglasses(ctx, items)
	result := MutationResult{PrimaryOK: outcome.Durable(), Outcome: outcome}
	if !result.PrimaryOK {
		return result
	}

	result.SideEffectErrors = s.releaseImages(ctx, owned)
	return result
}

// UploadImage validates the file client-side, then delegates storage to
// the backend. When the backend is unreachable the image is embedded as a
// data URI instead: degraded but functional, at the cost of bloating the
// collection JSON.
func (s *CatalogStore) UploadImage(ctx context.Context, data []byte, fileName, folder string, maxBytes int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	if len(data) > maxBytes {
		return "", fmt.Errorf("file is %d bytes, limit is %d", len(data), maxBytes)
	}
	mimeType := http.DetectContentType(data)
	switch mimeType {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return "", fmt.Errorf("unsupported image type %s", mimeType)
	}

	path, err := s.client.UploadImage(ctx, data, fileName, folder)
	if err != nil {
		log.Printf("⚠️  Image upload failed, embedding as data URI: %v", err)
		return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	}
	return path, nil
}

// DeleteImage releases one image best-effort. External URLs and data
// URIs have nothing to release; endpoint failures are logged only. The
// call always reports success to the caller.
func (s *CatalogStore) DeleteImage(ctx context.Context, imagePath string) bool {
	errs := s.releaseImages(ctx, []string{imagePath})
	for _, err := range errs {
		log.Printf("⚠️  Image release failed (ignored): %v", err)
	}
	return true
}

func (s *CatalogStore) releaseImages(ctx context.Context, paths []string) []error {
	var errs []error
	for _, path := range paths {
		if path == "" || utils.IsExternalURL(path) || utils.IsDataURI(path) {
			continue
		}
		if err := s.releaser.ReleaseImage(ctx, path); err != nil {
			log.Printf("⚠️  Failed to release image %s: %v", path, err)
			errs = append(errs, fmt.Errorf("release %s: %w", path, err))
		}
	}
	return errs
}

func droppedImages(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, img := range after {
		kept[img] = true
	}
	var dropped []string
	for _, img := range before {
		if !kept[img] {
			dropped = append(dropped, img)
		}
	}
	return dropped
}
