package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"optica-vista-me/service"
)

// allowedImageFolders limits uploads to the folders the catalog owns
var allowedImageFolders = map[string]bool{
	"frames":     true,
	"sunglasses": true,
	"company":    true,
}

// ImageController handles image upload and release requests
type ImageController struct {
	imageService service.ImageServiceInterface
}

// NewImageController creates a new ImageController
func NewImageController(imageService service.ImageServiceInterface) *ImageController {
	return &ImageController{imageService: imageService}
}

// Upload handles POST /api/upload-image with a multipart body: an
// "image" file part plus a "folder" field.
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(service.MaxGalleryImageBytes); err != nil {
		log.Printf("❌ Upload: Invalid multipart body: %v", err)
		http.Error(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	folder := strings.TrimSpace(r.FormValue("folder"))
	if folder == "" {
		folder = "frames"
	}
	if !allowedImageFolders[folder] {
		http.Error(w, fmt.Sprintf("Invalid folder %q. Valid folders: frames, sunglasses, company", folder), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Upload: Error reading file: %v", err)
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	path, err := c.imageService.Upload(data, header.Filename, folder, service.MaxGalleryImageBytes)
	if err != nil {
		log.Printf("❌ Upload: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("✅ Image uploaded: %s (%d bytes in)", path, len(data))
	writeJSON(w, map[string]string{"path": path})
}

// Delete handles DELETE /api/delete-image with a JSON body {"imagePath": ...}.
// The release is best-effort: the response is success even when the file
// was already gone.
func (c *ImageController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ImagePath string `json:"imagePath"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.ImagePath == "" {
		http.Error(w, "imagePath is required", http.StatusBadRequest)
		return
	}

	if err := c.imageService.Delete(body.ImagePath); err != nil {
		log.Printf("⚠️  Delete image %s: %v", body.ImagePath, err)
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// Serve handles GET /images/... for stored catalog images
func (c *ImageController) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath, ok := c.imageService.ResolveFile(r.URL.Path)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, filePath)
}
