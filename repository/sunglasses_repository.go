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

const sunglassesCollection = "sunglasses"

// SunglassesRepository handles sunglasses persistence over the JSON file store
// Implements SunglassesRepositoryInterface
type SunglassesRepository struct {
	store *db.FileStore
}

// NewSunglassesRepository creates a new SunglassesRepository
func NewSunglassesRepository(store *db.FileStore) *SunglassesRepository {
	return &SunglassesRepository{store: store}
}

// Ensure SunglassesRepository implements SunglassesRepositoryInterface
var _ SunglassesRepositoryInterface = (*SunglassesRepository)(nil)

// List returns the full sunglasses collection
func (r *SunglassesRepository) List(ctx context.Context) ([]models.Sunglasses, error) {
	var items []models.Sunglasses
	if _, err := r.store.Read(sunglassesCollection, &items); err != nil {
		return nil, fmt.Errorf("failed to load sunglasses: %w", err)
	}
	if items == nil {
		items = []models.Sunglasses{}
	}
	return items, nil
}

// GetByID retrieves one record by id
func (r *SunglassesRepository) GetByID(ctx context.Context, id string) (*models.Sunglasses, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns a new id and created timestamp and persists the collection
func (r *SunglassesRepository) Create(ctx context.Context, item models.Sunglasses) (*models.Sunglasses, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	item.NormalizeImages()

	items = append(items, item)
	if err := r.store.Write(sunglassesCollection, items); err != nil {
		return nil, fmt.Errorf("failed to persist sunglasses: %w", err)
	}

	log.Printf("✅ Sunglasses created: id=%s name=%s", item.ID, item.Name)
	return &item, nil
}

// Update merges the partial request onto the stored record and reports the
// image paths the update removed.
func (r *SunglassesRepository) Update(ctx context.Context, id string, req models.SunglassesUpdateRequest) (*models.Sunglasses, []string, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		oldImages := items[i].Images
		req.ApplyTo(&items[i])

		if err := r.store.Write(sunglassesCollection, items); err != nil {
			return nil, nil, fmt.Errorf("failed to persist sunglasses: %w", err)
		}

		removed := removedImages(oldImages, items[i].Images)
		log.Printf("✅ Sunglasses updated: id=%s (%d images removed)", id, len(removed))
		return &items[i], removed, nil
	}

	return nil, nil, ErrNotFound
}

// Delete removes the record and returns the image paths it owned
func (r *SunglassesRepository) Delete(ctx context.Context, id string) ([]string, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		owned := items[i].Images
		items = append(items[:i], items[i+1:]...)
		if err := r.store.Write(sunglassesCollection, items); err != nil {
			return nil, fmt.Errorf("failed to persist sunglasses: %w", err)
		}

		log.Printf("✅ Sunglasses deleted: id=%s (%d images to release)", id, len(owned))
		return owned, nil
	}

	return nil, ErrNotFound
}

// ReplaceAll overwrites the whole collection, normalizing each record.
// Last write wins across concurrent writers.
func (r *SunglassesRepository) ReplaceAll(ctx context.Context, items []models.Sunglasses) error {
	items = append([]models.Sunglasses(nil), items...)
	for i := range items {
		items[i].NormalizeImages()
	}
	if err := r.store.Write(sunglassesCollection, items); err != nil {
		return fmt.Errorf("failed to persist sunglasses: %w", err)
	}
	log.Printf("✅ Sunglasses collection replaced: %d records", len(items))
	return nil
}
