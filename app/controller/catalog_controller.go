package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"optica-vista-me/models"
	"optica-vista-me/repository"
	"optica-vista-me/service"
)

// CatalogController handles HTTP requests for the frame and sunglasses
// collections. The collection endpoints speak whole documents: GET
// returns everything, POST replaces everything. Per-record routes exist
// for the admin detail screens.
type CatalogController struct {
	frames       repository.FrameRepositoryInterface
	sunglasses   repository.SunglassesRepositoryInterface
	imageService service.ImageServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	frames repository.FrameRepositoryInterface,
	sunglasses repository.SunglassesRepositoryInterface,
	imageService service.ImageServiceInterface,
) *CatalogController {
	return &CatalogController{
		frames:       frames,
		sunglasses:   sunglasses,
		imageService: imageService,
	}
}

// Frames handles GET and POST /api/frames
func (c *CatalogController) Frames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		frames, err := c.frames.List(r.Context())
		if err != nil {
			log.Printf("❌ Frames: Error listing frames: %v", err)
			http.Error(w, "Failed to list frames", http.StatusInternalServerError)
			return
		}
		writeJSON(w, frames)
	case http.MethodPost:
		var frames []models.Frame
		if err := json.NewDecoder(r.Body).Decode(&frames); err != nil {
			log.Printf("❌ Frames: Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := validateFrames(frames); err != nil {
			log.Printf("❌ Frames: Validation failed: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := c.frames.ReplaceAll(r.Context(), frames); err != nil {
			log.Printf("❌ Frames: Error replacing collection: %v", err)
			http.Error(w, "Failed to save frames", http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Frames collection replaced (%d records)", len(frames))
		writeJSON(w, frames)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// FrameByID handles GET, PUT and DELETE /api/frames/{id}
func (c *CatalogController) FrameByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/frames/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		frame, err := c.frames.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, "FrameByID", err)
			return
		}
		writeJSON(w, frame)
	case http.MethodPut:
		var req models.FrameUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		frame, removed, err := c.frames.Update(r.Context(), id, req)
		if err != nil {
			respondRepoError(w, "FrameByID", err)
			return
		}
		c.releaseImages(removed)
		writeJSON(w, frame)
	case http.MethodDelete:
		owned, err := c.frames.Delete(r.Context(), id)
		if err != nil {
			respondRepoError(w, "FrameByID", err)
			return
		}
		c.releaseImages(owned)
		log.Printf("✅ Frame %s deleted (%d images released)", id, len(owned))
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Sunglasses handles GET and POST /api/sunglasses
func (c *CatalogController) Sunglasses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := c.sunglasses.List(r.Context())
		if err != nil {
			log.Printf("❌ Sunglasses: Error listing sunglasses: %v", err)
			http.Error(w, "Failed to list sunglasses", http.StatusInternalServerError)
			return
		}
		writeJSON(w, items)
	case http.MethodPost:
		var items []models.Sunglasses
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			log.Printf("❌ Sunglasses: Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		for i := range items {
			if err := validateFrame(items[i].Frame); err != nil {
				log.Printf("❌ Sunglasses: Validation failed: %v", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if err := c.sunglasses.ReplaceAll(r.Context(), items); err != nil {
			log.Printf("❌ Sunglasses: Error replacing collection: %v", err)
			http.Error(w, "Failed to save sunglasses", http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Sunglasses collection replaced (%d records)", len(items))
		writeJSON(w, items)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// SunglassesByID handles GET, PUT and DELETE /api/sunglasses/{id}
func (c *CatalogController) SunglassesByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/sunglasses/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := c.sunglasses.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, "SunglassesByID", err)
			return
		}
		writeJSON(w, item)
	case http.MethodPut:
		var req models.SunglassesUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		item, removed, err := c.sunglasses.Update(r.Context(), id, req)
		if err != nil {
			respondRepoError(w, "SunglassesByID", err)
			return
		}
		c.releaseImages(removed)
		writeJSON(w, item)
	case http.MethodDelete:
		owned, err := c.sunglasses.Delete(r.Context(), id)
		if err != nil {
			respondRepoError(w, "SunglassesByID", err)
			return
		}
		c.releaseImages(owned)
		log.Printf("✅ Sunglasses %s deleted (%d images released)", id, len(owned))
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// releaseImages unlinks dropped image files. Failures are logged and
// swallowed, the record operation already succeeded.
func (c *CatalogController) releaseImages(paths []string) {
	for _, path := range paths {
		if err := c.imageService.Delete(path); err != nil {
			log.Printf("⚠️  Failed to release image %s: %v", path, err)
		}
	}
}

func validateFrames(frames []models.Frame) error {
	for i := range frames {
		if err := validateFrame(frames[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateFrame(f models.Frame) error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("frame name is required")
	}
	if f.Price < 0 {
		return errors.New("frame price must not be negative")
	}
	return nil
}

// writeJSON sets the content type and encodes the response body
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// respondRepoError maps repository errors to HTTP statuses
func respondRepoError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	log.Printf("❌ %s: %v", op, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
