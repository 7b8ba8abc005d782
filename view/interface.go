package view

import (
	"context"

	"optica-vista-me/models"
	"optica-vista-me/store"
)

// CatalogReader is the read-only slice of the data store the public
// views consume. Reads never fail, the store degrades to fallback data.
type CatalogReader interface {
	GetFrames(ctx context.Context) []models.Frame
	GetSunglasses(ctx context.Context) []models.Sunglasses
	GetCompany(ctx context.Context) *models.CompanyProfile
}

// CatalogMutator is the full store surface the admin views consume
type CatalogMutator interface {
	CatalogReader
	CreateFrame(ctx context.Context, frame models.Frame) *models.Frame
	UpdateFrame(ctx context.Context, id string, req models.FrameUpdateRequest) store.MutationResult
	DeleteFrame(ctx context.Context, id string) store.MutationResult
	CreateSunglasses(ctx context.Context, item models.Sunglasses) *models.Sunglasses
	UpdateSunglasses(ctx context.Context, id string, req models.SunglassesUpdateRequest) store.MutationResult
	DeleteSunglasses(ctx context.Context, id string) store.MutationResult
	SaveCompany(ctx context.Context, profile models.CompanyProfile) store.SaveOutcome
}

var _ CatalogMutator = (*store.CatalogStore)(nil)
