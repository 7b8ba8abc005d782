package models

// LensFeatures describes the lens options specific to sunglasses
type LensFeatures struct {
	UVProtection string `json:"uvProtection"`
	Polarized    bool   `json:"polarized"`
	Tinted       bool   `json:"tinted"`
	Mirrored     bool   `json:"mirrored"`
}

// Sunglasses represents a pair of sunglasses in the catalog.
// It carries all frame fields plus lens features.
type Sunglasses struct {
	Frame
	LensFeatures LensFeatures `json:"lensFeatures"`
}

// SunglassesUpdateRequest represents a partial update for sunglasses.
type SunglassesUpdateRequest struct {
	FrameUpdateRequest
	LensFeatures *LensFeatures `json:"lensFeatures"`
}

// ApplyTo merges the populated fields onto an existing record.
func (u *SunglassesUpdateRequest) ApplyTo(s *Sunglasses) {
	u.FrameUpdateRequest.ApplyTo(&s.Frame)
	if u.LensFeatures != nil {
		s.LensFeatures = *u.LensFeatures
	}
}
