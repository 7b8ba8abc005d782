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

const contactsCollection = "contacts"

// ContactRepository handles contact-form submission persistence
// Implements ContactRepositoryInterface
type ContactRepository struct {
	store *db.FileStore
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(store *db.FileStore) *ContactRepository {
	return &ContactRepository{store: store}
}

// Ensure ContactRepository implements ContactRepositoryInterface
var _ ContactRepositoryInterface = (*ContactRepository)(nil)

func (r *ContactRepository) load() ([]models.ContactSubmission, error) {
	var items []models.ContactSubmission
	if _, err := r.store.Read(contactsCollection, &items); err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	if items == nil {
		items = []models.ContactSubmission{}
	}
	return items, nil
}

// List returns submissions, optionally narrowed by status and priority
func (r *ContactRepository) List(ctx context.Context, status *models.Status, priority *models.Priority) ([]models.ContactSubmission, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	if status == nil && priority == nil {
		return items, nil
	}

	out := make([]models.ContactSubmission, 0, len(items))
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

// GetByID retrieves one submission by id
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
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

// Create stores a new public contact submission
func (r *ContactRepository) Create(ctx context.Context, req models.ContactCreateRequest) (*models.ContactSubmission, error) {
	items, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	submission := models.ContactSubmission{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PreferredReply: req.PreferredReply,
		Message:        req.Message,
		Status:         models.StatusNew,
		Priority:       models.PriorityMedium,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	items = append(items, submission)
	if err := r.store.Write(contactsCollection, items); err != nil {
		return nil, fmt.Errorf("failed to persist contacts: %w", err)
	}

	log.Printf("✅ Contact submission created: id=%s", submission.ID)
	return &submission, nil
}

// Update applies an admin update with status-transition validation
func (r *ContactRepository) Update(ctx context.Context, id string, req models.ContactUpdateRequest) (*models.ContactSubmission, error) {
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

		if err := r.store.Write(contactsCollection, items); err != nil {
			return nil, fmt.Errorf("failed to persist contacts: %w", err)
		}

		log.Printf("✅ Contact submission updated: id=%s status=%s", id, items[i].Status)
		return &items[i], nil
	}

	return nil, ErrNotFound
}

// Delete removes the submission
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	items, err := r.load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := r.store.Write(contactsCollection, items); err != nil {
			return fmt.Errorf("failed to persist contacts: %w", err)
		}
		log.Printf("✅ Contact submission deleted: id=%s", id)
		return nil
	}

	return ErrNotFound
}
