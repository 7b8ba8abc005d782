package models

// ContactDetails holds the company's public contact information
type ContactDetails struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// DayHours describes opening hours for one weekday
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// Service is one service the store offers (eye exams, fittings, repairs...)
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Testimonial is a customer quote shown on the public pages
type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// PageBlock is a free-form content block for one public page section
type PageBlock struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
}

// PageContent groups the per-page content blocks
type PageContent struct {
	Home       PageBlock `json:"home"`
	About      PageBlock `json:"about"`
	Contact    PageBlock `json:"contact"`
	Footer     PageBlock `json:"footer"`
	Navigation PageBlock `json:"navigation"`
}

// CompanyProfile is the singleton record holding all company content.
// There is exactly one profile; it has no id.
type CompanyProfile struct {
	Name         string              `json:"name"`
	Tagline      string              `json:"tagline"`
	Description  string              `json:"description"`
	Contact      ContactDetails      `json:"contact"`
	Hours        map[string]DayHours `json:"hours"` // keyed by lowercase weekday name
	Services     []Service           `json:"services"`
	Features     []string            `json:"features"`
	Testimonials []Testimonial       `json:"testimonials"`
	Pages        PageContent         `json:"pages"`
}

// CompanySectionUpdate carries a partial update for one section of the
// profile. Nil sections are left untouched; the whole singleton is
// persisted after the merge.
type CompanySectionUpdate struct {
	Name         *string              `json:"name"`
	Tagline      *string              `json:"tagline"`
	Description  *string              `json:"description"`
	Contact      *ContactDetails      `json:"contact"`
	Hours        *map[string]DayHours `json:"hours"`
	Services     *[]Service           `json:"services"`
	Features     *[]string            `json:"features"`
	Testimonials *[]Testimonial       `json:"testimonials"`
	Pages        *PageContent         `json:"pages"`
}

// ApplyTo merges the populated sections onto the profile.
func (u *CompanySectionUpdate) ApplyTo(p *CompanyProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Tagline != nil {
		p.Tagline = *u.Tagline
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Contact != nil {
		p.Contact = *u.Contact
	}
	if u.Hours != nil {
		p.Hours = *u.Hours
	}
	if u.Services != nil {
		p.Services = *u.Services
	}
	if u.Features != nil {
		p.Features = *u.Features
	}
	if u.Testimonials != nil {
		p.Testimonials = *u.Testimonials
	}
	if u.Pages != nil {
		p.Pages = *u.Pages
	}
}
