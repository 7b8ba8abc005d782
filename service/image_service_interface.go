package service

// ImageServiceInterface defines the contract for image storage operations
type ImageServiceInterface interface {
	// Upload validates, optimizes and stores one image, returning its web path
	Upload(data []byte, originalName, folder string, maxBytes int) (string, error)
	// Delete releases the backing file; external URLs and data URIs are no-ops
	Delete(webPath string) error
	// ResolveFile maps a stored web path to its on-disk location
	ResolveFile(webPath string) (string, bool)
}
