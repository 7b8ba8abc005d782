package models

// ContactSubmission is a message sent through the public contact form
type ContactSubmission struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	PreferredReply string   `json:"preferredReply"` // "email" or "phone"
	Message        string   `json:"message"`
	Status         Status   `json:"status"`
	Priority       Priority `json:"priority"`
	Notes          string   `json:"notes"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ContactCreateRequest is the public contact-form payload
type ContactCreateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PreferredReply string `json:"preferredReply"`
	Message        string `json:"message"`
}

// ContactUpdateRequest is the admin update payload
type ContactUpdateRequest struct {
	Status   *Status   `json:"status"`
	Priority *Priority `json:"priority"`
	Notes    *string   `json:"notes"`
}
