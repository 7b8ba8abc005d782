package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"optica-vista-me/models"
	"optica-vista-me/repository"
)

// InquiryController handles customer inquiries: public creation plus the
// admin triage flow (status transitions, priority, notes).
type InquiryController struct {
	inquiries repository.InquiryRepositoryInterface
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiries repository.InquiryRepositoryInterface) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

// Inquiries handles GET and POST /api/inquiries
func (c *InquiryController) Inquiries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		status, priority, err := parseTriageFilters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		items, err := c.inquiries.List(r.Context(), status, priority)
		if err != nil {
			log.Printf("❌ Inquiries: Error listing: %v", err)
			http.Error(w, "Failed to list inquiries", http.StatusInternalServerError)
			return
		}
		writeJSON(w, items)
	case http.MethodPost:
		var req models.InquiryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
			http.Error(w, "name, email and message are required", http.StatusBadRequest)
			return
		}
		created, err := c.inquiries.Create(r.Context(), req)
		if err != nil {
			log.Printf("❌ Inquiries: Error creating: %v", err)
			http.Error(w, "Failed to create inquiry", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// InquiryByID handles GET, PUT and DELETE /api/inquiries/{id}
func (c *InquiryController) InquiryByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/inquiries/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := c.inquiries.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, "InquiryByID", err)
			return
		}
		writeJSON(w, item)
	case http.MethodPut:
		var req models.InquiryUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		item, err := c.inquiries.Update(r.Context(), id, req)
		if err != nil {
			respondTriageError(w, "InquiryByID", err)
			return
		}
		writeJSON(w, item)
	case http.MethodDelete:
		if err := c.inquiries.Delete(r.Context(), id); err != nil {
			respondRepoError(w, "InquiryByID", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// parseTriageFilters reads the optional status and priority query
// parameters shared by the inquiry and contact listings.
func parseTriageFilters(r *http.Request) (*models.Status, *models.Priority, error) {
	var status *models.Status
	var priority *models.Priority

	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := models.Status(raw)
		if !s.IsValid() {
			return nil, nil, errors.New("invalid status filter")
		}
		status = &s
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("priority")); raw != "" {
		p := models.Priority(raw)
		if !p.IsValid() {
			return nil, nil, errors.New("invalid priority filter")
		}
		priority = &p
	}
	return status, priority, nil
}

// respondTriageError additionally maps rejected status transitions and
// bad priorities to a validation response.
func respondTriageError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, models.ErrInvalidTransition) || errors.Is(err, repository.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondRepoError(w, op, err)
}
