package service

import "context"

// ExportServiceInterface defines the contract for catalog export operations
type ExportServiceInterface interface {
	// RenderCatalogHTML renders the printable catalog HTML
	RenderCatalogHTML(ctx context.Context) (string, error)
	// GeneratePDF prints the rendered catalog to PDF bytes
	GeneratePDF(ctx context.Context) ([]byte, error)
}
