package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"optica-vista-me/db"
	"optica-vista-me/models"
)

const framesCollection = "frames"

// FrameRepository handles frame persistence over the JSON file store
// Implements FrameRepositoryInterface
type FrameRepository struct {
	store *db.FileStore
}

// NewFrameRepository creates a new FrameRepository
func NewFrameRepository(store *db.FileStore) *FrameRepository {
	return &FrameRepository{store: store}
}

// Ensure FrameRepository implements FrameRepositoryInterface
var _ FrameRepositoryInterface = (*FrameRepository)(nil)

// List returns the full frames collection. A missing collection file is an
// empty catalog, not an error.
func (r *FrameRepository) List(ctx context.Context) ([]models.Frame, error) {
	var frames []models.Frame
	if _, err := r.store.Read(framesCollection, &frames); err != nil {
		return nil, fmt.Errorf("failed to load frames: %w", err)
	}
	if frames == nil {
		frames = []models.Frame{}
	}
	return frames, nil
}

// GetByID retrieves one frame by id
func (r *FrameRepository) GetByID(ctx context.Context, id string) (*models.Frame, error) {
	frames, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range frames {
		if frames[i].ID == id {
			return &frames[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns a new id and created timestamp, appends the frame to the
// collection and persists the whole file.
func (r *FrameRepository) Create(ctx context.Context, frame models.Frame) (*models.Frame, error) {
	frames, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	frame.ID = uuid.NewString()
	frame.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	frame.NormalizeImages()

	frames = append(frames, frame)
	if err := r.store.Write(framesCollection, frames); err != nil {
		return nil, fmt.Errorf("failed to persist frames: %w", err)
	}

	log.Printf("✅ Frame created: id=%s name=%s", frame.ID, frame.Name)
	return &frame, nil
}

// Update merges the partial request onto the stored frame. The returned
// string slice lists image paths present before the update but absent
// after it; the caller is responsible for releasing their files.
func (r *FrameRepository) Update(ctx context.Context, id string, req models.FrameUpdateRequest) (*models.Frame, []string, error) {
	frames, err := r.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range frames {
		if frames[i].ID != id {
			continue
		}

		oldImages := frames[i].Images
		req.ApplyTo(&frames[i])

		if err := r.store.Write(framesCollection, frames); err != nil {
			return nil, nil, fmt.Errorf("failed to persist frames: %w", err)
		}

		removed := removedImages(oldImages, frames[i].Images)
		log.Printf("✅ Frame updated: id=%s (%d images removed)", id, len(removed))
		return &frames[i], removed, nil
	}

	return nil, nil, ErrNotFound
}

// Delete removes the frame and returns the image paths it owned so the
// caller can release the backing files.
func (r *FrameRepository) Delete(ctx context.Context, id string) ([]string, error) {
	frames, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range frames {
		if frames[i].ID != id {
			continue
		}

		owned := frames[i].Images
		frames = append(frames[:i], frames[i+1:]...)
		if err := r.store.Write(framesCollection, frames); err != nil {
			return nil, fmt.Errorf("failed to persist frames: %w", err)
		}

		log.Printf("✅ Frame deleted: id=%s (%d images to release)", id, len(owned))
		return owned, nil
	}

	return nil, ErrNotFound
}

// ReplaceAll overwrites the whole collection, normalizing each record.
// This backs the whole-collection POST endpoint; there is no merge and no
// concurrency check, so concurrent writers are last write wins.
func (r *FrameRepository) ReplaceAll(ctx context.Context, frames []models.Frame) error {
	// Normalize a copy; the caller's slice stays untouched.
	frames = append([]models.Frame(nil), frames...)
	for i := range frames {
		frames[i].NormalizeImages()
	}
	if err := r.store.Write(framesCollection, frames); err != nil {
		return fmt.Errorf("failed to persist frames: %w", err)
	}
	log.Printf("✅ Frames collection replaced: %d records", len(frames))
	return nil
}

// removedImages returns the paths in before that are missing from after
func removedImages(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, img := range after {
		kept[img] = true
	}
	var removed []string
	for _, img := range before {
		if !kept[img] {
			removed = append(removed, img)
		}
	}
	return removed
}
