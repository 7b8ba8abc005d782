package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"optica-vista-me/utils"
)

const (
	// MaxSingleImageBytes caps single-image upload call sites (5MB)
	MaxSingleImageBytes = 5 << 20
	// MaxGalleryImageBytes caps admin gallery upload call sites (10MB)
	MaxGalleryImageBytes = 10 << 20

	// Quality settings
	qualityThumb = 60
	qualityFull  = 82
	// Size settings (max dimension)
	maxSizeThumb = 300
	maxSizeFull  = 1600

	imageWebPrefix = "/images/"
)

// ErrInvalidImage marks validation failures (bad type, oversized file).
// Callers report these to the submitting form; the operation is never
// attempted.
var ErrInvalidImage = errors.New("invalid image")

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// ImageService stores catalog images on local disk under an image
// directory, optimizing them on the way in. Stored images are addressed
// by web path (/images/<folder>/<file>).
// Implements ImageServiceInterface
type ImageService struct {
	imageDir string
}

// NewImageService creates a new ImageService rooted at imageDir
func NewImageService(imageDir string) (*ImageService, error) {
	if imageDir == "" {
		return nil, fmt.Errorf("image directory is required")
	}
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &ImageService{imageDir: imageDir}, nil
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// Dir returns the root image directory (used for static file serving)
func (s *ImageService) Dir() string {
	return s.imageDir
}

// Upload validates, optimizes and stores one image, returning its web
// path. maxBytes selects the call-site cap (MaxSingleImageBytes or
// MaxGalleryImageBytes).
func (s *ImageService) Upload(data []byte, originalName, folder string, maxBytes int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if len(data) > maxBytes {
		return "", fmt.Errorf("%w: file is %d bytes, limit is %d", ErrInvalidImage, len(data), maxBytes)
	}

	mimeType := http.DetectContentType(data)
	if !allowedImageTypes[mimeType] {
		return "", fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, mimeType)
	}

	optimized, err := OptimizeImage(data, "full")
	if err != nil {
		return "", fmt.Errorf("failed to optimize image: %w", err)
	}

	// Optimization re-encodes to JPEG regardless of input format.
	fileName := utils.SafeImageFileName(originalName)
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".jpg"

	targetDir := filepath.Join(s.imageDir, folder)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image folder: %w", err)
	}

	targetPath := filepath.Join(targetDir, fileName)
	if err := os.WriteFile(targetPath, optimized, 0644); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	webPath := imageWebPrefix + folder + "/" + fileName
	log.Printf("✓ Image stored: %s (%d -> %d bytes)", webPath, len(data), len(optimized))
	return webPath, nil
}

// Delete releases the backing file for a stored image. External URLs and
// embedded data URIs have nothing to release and succeed as no-ops; a
// file that is already gone also counts as released.
func (s *ImageService) Delete(webPath string) error {
	if webPath == "" || utils.IsExternalURL(webPath) || utils.IsDataURI(webPath) {
		return nil
	}

	diskPath, ok := s.ResolveFile(webPath)
	if !ok {
		return fmt.Errorf("path %q is not inside the image store", webPath)
	}

	if err := os.Remove(diskPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete image %s: %w", webPath, err)
	}

	log.Printf("✓ Image released: %s", webPath)
	return nil
}

// ResolveFile maps a stored-image web path to its on-disk location.
// Returns false for paths outside the image store (including traversal
// attempts).
func (s *ImageService) ResolveFile(webPath string) (string, bool) {
	if !strings.HasPrefix(webPath, imageWebPrefix) {
		return "", false
	}
	rel := filepath.Clean(strings.TrimPrefix(webPath, imageWebPrefix))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", false
	}
	return filepath.Join(s.imageDir, rel), true
}

// OptimizeImage optimizes an image by converting to JPEG and resizing.
// size: "thumb" or "full". Returns optimized JPEG image bytes.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "full":
		maxDim = maxSizeFull
		quality = qualityFull
	default:
		maxDim = maxSizeFull
		quality = qualityFull
		log.Printf("⚠️  Unknown size '%s', defaulting to full", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > maxDim || height > maxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("📸 Image optimized: format=%s, size=%s, output=%d bytes", format, size, buf.Len())
	return buf.Bytes(), nil
}
