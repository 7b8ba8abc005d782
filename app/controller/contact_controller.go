package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"optica-vista-me/models"
	"optica-vista-me/repository"
)

// ContactController handles contact-form submissions and their admin
// triage, mirroring the inquiry flow.
type ContactController struct {
	contacts repository.ContactRepositoryInterface
}

// NewContactController creates a new ContactController
func NewContactController(contacts repository.ContactRepositoryInterface) *ContactController {
	return &ContactController{contacts: contacts}
}

// Contacts handles GET and POST /api/contacts
func (c *ContactController) Contacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		status, priority, err := parseTriageFilters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		items, err := c.contacts.List(r.Context(), status, priority)
		if err != nil {
			log.Printf("❌ Contacts: Error listing: %v", err)
			http.Error(w, "Failed to list contacts", http.StatusInternalServerError)
			return
		}
		writeJSON(w, items)
	case http.MethodPost:
		var req models.ContactCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
			http.Error(w, "name, email and message are required", http.StatusBadRequest)
			return
		}
		created, err := c.contacts.Create(r.Context(), req)
		if err != nil {
			log.Printf("❌ Contacts: Error creating: %v", err)
			http.Error(w, "Failed to create contact submission", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ContactByID handles GET, PUT and DELETE /api/contacts/{id}
func (c *ContactController) ContactByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/contacts/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := c.contacts.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, "ContactByID", err)
			return
		}
		writeJSON(w, item)
	case http.MethodPut:
		var req models.ContactUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		item, err := c.contacts.Update(r.Context(), id, req)
		if err != nil {
			respondTriageError(w, "ContactByID", err)
			return
		}
		writeJSON(w, item)
	case http.MethodDelete:
		if err := c.contacts.Delete(r.Context(), id); err != nil {
			respondRepoError(w, "ContactByID", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
