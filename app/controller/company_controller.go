package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"optica-vista-me/models"
	"optica-vista-me/repository"
)

// CompanyController handles HTTP requests for the company profile
// singleton. POST replaces the whole profile; PUT merges one section.
type CompanyController struct {
	company repository.CompanyRepositoryInterface
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(company repository.CompanyRepositoryInterface) *CompanyController {
	return &CompanyController{company: company}
}

// Company handles GET, POST and PUT /api/company
func (c *CompanyController) Company(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		profile, err := c.company.Get(r.Context())
		if err != nil {
			log.Printf("❌ Company: Error loading profile: %v", err)
			http.Error(w, "Failed to load company profile", http.StatusInternalServerError)
			return
		}
		if profile == nil {
			http.Error(w, "Company profile not configured", http.StatusNotFound)
			return
		}
		writeJSON(w, profile)
	case http.MethodPost:
		var profile models.CompanyProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			log.Printf("❌ Company: Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := c.company.Save(r.Context(), profile); err != nil {
			log.Printf("❌ Company: Error saving profile: %v", err)
			http.Error(w, "Failed to save company profile", http.StatusInternalServerError)
			return
		}
		log.Printf("✅ Company profile saved: %s", profile.Name)
		writeJSON(w, profile)
	case http.MethodPut:
		var update models.CompanySectionUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("❌ Company: Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		profile, err := c.company.UpdateSection(r.Context(), update)
		if err != nil {
			log.Printf("❌ Company: Error updating section: %v", err)
			http.Error(w, "Failed to update company profile", http.StatusInternalServerError)
			return
		}
		writeJSON(w, profile)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
