package repository

import (
	"context"
	"errors"

	"optica-vista-me/models"
)

// ErrNotFound is returned when a record id does not exist in its collection
var ErrNotFound = errors.New("record not found")

// ErrInvalidInput is returned when a request carries a value the record
// cannot accept, distinct from persistence failures
var ErrInvalidInput = errors.New("invalid input")

// FrameRepositoryInterface defines the contract for frame persistence
type FrameRepositoryInterface interface {
	List(ctx context.Context) ([]models.Frame, error)
	GetByID(ctx context.Context, id string) (*models.Frame, error)
	Create(ctx context.Context, frame models.Frame) (*models.Frame, error)
	// Update merges the partial request onto the stored record and returns
	// the updated record plus the image paths the update removed.
	Update(ctx context.Context, id string, req models.FrameUpdateRequest) (*models.Frame, []string, error)
	// Delete removes the record and returns the image paths it owned.
	Delete(ctx context.Context, id string) ([]string, error)
	ReplaceAll(ctx context.Context, frames []models.Frame) error
}

// SunglassesRepositoryInterface defines the contract for sunglasses persistence
type SunglassesRepositoryInterface interface {
	List(ctx context.Context) ([]models.Sunglasses, error)
	GetByID(ctx context.Context, id string) (*models.Sunglasses, error)
	Create(ctx context.Context, item models.Sunglasses) (*models.Sunglasses, error)
	Update(ctx context.Context, id string, req models.SunglassesUpdateRequest) (*models.Sunglasses, []string, error)
	Delete(ctx context.Context, id string) ([]string, error)
	ReplaceAll(ctx context.Context, items []models.Sunglasses) error
}

// CompanyRepositoryInterface defines the contract for the company profile singleton
type CompanyRepositoryInterface interface {
	Get(ctx context.Context) (*models.CompanyProfile, error)
	Save(ctx context.Context, profile models.CompanyProfile) error
	UpdateSection(ctx context.Context, update models.CompanySectionUpdate) (*models.CompanyProfile, error)
}

// InquiryRepositoryInterface defines the contract for inquiry persistence
type InquiryRepositoryInterface interface {
	List(ctx context.Context, status *models.Status, priority *models.Priority) ([]models.Inquiry, error)
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	Create(ctx context.Context, req models.InquiryCreateRequest) (*models.Inquiry, error)
	Update(ctx context.Context, id string, req models.InquiryUpdateRequest) (*models.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepositoryInterface defines the contract for contact submissions
type ContactRepositoryInterface interface {
	List(ctx context.Context, status *models.Status, priority *models.Priority) ([]models.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	Create(ctx context.Context, req models.ContactCreateRequest) (*models.ContactSubmission, error)
	Update(ctx context.Context, id string, req models.ContactUpdateRequest) (*models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}
