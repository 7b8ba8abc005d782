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

const inquiriesCollection = "inquiries"

// InquiryRepository handles customer inquiry persistence
// Implements InquiryRepositoryInterface
type InquiryRepository struct {
	store *db.FileStore
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(store *db.FileStore) *InquiryRepository {
	return &InquiryRepository{store: store}
}

// Ensure InquiryRepository implements InquiryRepositoryInterface
var _ InquiryRepositoryInterface = (*InquiryRepository)(nil)

func (r *InquiryRepository) load() ([]models.Inquiry, error) {
	var items []models.Inquiry
	if _, err := r.store.Read(inquiriesCollection, &items); err != nil {
		return nil, fmt.Errorf("failed to load inquiries: %w", err)
	}
	if items == nil {
		items = []models.Inquiry{}
	}
	return items, nil
}

// List returns inquiries, optionally narrowed by status and priority
func (r *InquiryRepository) List(ctx context.Context, status *models.Status, priority *models.Priority) ([]models.Inquiry, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	if status == nil && priority == nil {
		return items, nil
	}

	out := make([]models.Inquiry, 0, len(items))
	for _, item := range items {
		if status != nil && item.Status != *status {
			continue
		}
		if priority != nil && item.Priority != *priority {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// GetByID retrieves one inquiry by id
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	items, err := r.load()
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

// Create stores a new public submission with status "new" and medium priority
func (r *InquiryRepository) Create(ctx context.Context, req models.InquiryCreateRequest) (*models.Inquiry, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	inquiry := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		ProductID: req.ProductID,
		Status:    models.StatusNew,
		Priority:  models.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	items = append(items, inquiry)
	if err := r.store.Write(inquiriesCollection, items); err != nil {
		return nil, fmt.Errorf("failed to persist inquiries: %w", err)
	}

	log.Printf("✅ Inquiry created: id=%s subject=%s", inquiry.ID, inquiry.Subject)
	return &inquiry, nil
}

// Update applies an admin update. Status changes are validated against the
// allowed transition flow.
func (r *InquiryRepository) Update(ctx context.Context, id string, req models.InquiryUpdateRequest) (*models.Inquiry, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		if req.Status != nil && *req.Status != items[i].Status {
			if err := items[i].Status.ValidateTransition(*req.Status); err != nil {
				return nil, err
			}
			items[i].Status = *req.Status
		}
		if req.Priority != nil {
			if !req.Priority.IsValid() {
				return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *req.Priority)
			}
			items[i].Priority = *req.Priority
		}
		if req.Notes != nil {
			items[i].Notes = *req.Notes
		}
		items[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := r.store.Write(inquiriesCollection, items); err != nil {
			return nil, fmt.Errorf("failed to persist inquiries: %w", err)
		}

		log.Printf("✅ Inquiry updated: id=%s status=%s", id, items[i].Status)
		return &items[i], nil
	}

	return nil, ErrNotFound
}

// Delete removes the inquiry
func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	items, err := r.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := r.store.Write(inquiriesCollection, items); err != nil {
			return fmt.Errorf("failed to persist inquiries: %w", err)
		}
		log.Printf("✅ Inquiry deleted: id=%s", id)
		return nil
	}

	return ErrNotFound
}
