package models

// Inquiry is a customer question submitted from the public site
// (product questions, insurance, appointment requests)
type Inquiry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Subject   string   `json:"subject"`
	Message   string   `json:"message"`
	ProductID string   `json:"productId,omitempty"` // set when the inquiry references a catalog item
	Status    Status   `json:"status"`
	Priority  Priority `json:"priority"`
	Notes     string   `json:"notes"` // admin-only working notes
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// InquiryCreateRequest is the public submission payload. Status and
// priority are assigned server-side.
type InquiryCreateRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// InquiryUpdateRequest is the admin update payload.
type InquiryUpdateRequest struct {
	Status   *Status   `json:"status"`
	Priority *Priority `json:"priority"`
	Notes    *string   `json:"notes"`
}
