package repository

import (
	"context"
	"fmt"
	"log"

	"optica-vista-me/db"
	"optica-vista-me/models"
)

const companyCollection = "company"

// CompanyRepository handles the company profile singleton
// Implements CompanyRepositoryInterface
type CompanyRepository struct {
	store *db.FileStore
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(store *db.FileStore) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// Ensure CompanyRepository implements CompanyRepositoryInterface
var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

// Get returns the profile, or nil when none has been saved yet
func (r *CompanyRepository) Get(ctx context.Context) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	found, err := r.store.Read(companyCollection, &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

// Save replaces the whole singleton
func (r *CompanyRepository) Save(ctx context.Context, profile models.CompanyProfile) error {
	if err := r.store.Write(companyCollection, profile); err != nil {
		return fmt.Errorf("failed to persist company profile: %w", err)
	}
	log.Printf("✅ Company profile saved: %s", profile.Name)
	return nil
}

// UpdateSection merges a partial section update into the profile and
// persists the entire singleton. Updating a section of a profile that was
// never saved starts from an empty profile.
func (r *CompanyRepository) UpdateSection(ctx context.Context, update models.CompanySectionUpdate) (*models.CompanyProfile, error) {
	profile, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.CompanyProfile{}
	}

	update.ApplyTo(profile)
	if err := r.Save(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}
