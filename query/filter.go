package query

import (
	"strings"

	"optica-vista-me/models"
)

// PriceRange is an inclusive price constraint. A present range always
// carries both bounds; callers fill defaults for blanks.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies in [Min, Max]
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FrameCriteria is a sparse filter over frames. Nil fields mean "no
// constraint"; all present constraints must hold (logical AND).
type FrameCriteria struct {
	Category   *string     // exact, case-sensitive
	Material   *string     // exact, case-sensitive
	Shape      *string     // exact, case-sensitive
	Brand      *string     // equality, case-insensitive
	Color      *string     // contains, case-insensitive
	Gender     *string     // unisex items pass any gender filter
	PriceRange *PriceRange // inclusive bounds
	InStock    *bool       // tri-state
	Query      string      // free-text search, "" = no constraint
}

// Matches tests one frame against every present constraint
func (c FrameCriteria) Matches(f models.Frame) bool {
	if c.Category != nil && f.Category != *c.Category {
		return false
	}
	if c.Material != nil && f.Material != *c.Material {
		return false
	}
	if c.Shape != nil && f.Shape != *c.Shape {
		return false
	}
	if c.Brand != nil && !strings.EqualFold(f.Brand, *c.Brand) {
		return false
	}
	if c.Color != nil && !containsFold(f.Color, *c.Color) {
		return false
	}
	if c.Gender != nil && f.Gender != *c.Gender && f.Gender != models.GenderUnisex {
		return false
	}
	if c.PriceRange != nil && !c.PriceRange.Contains(f.Price) {
		return false
	}
	if c.InStock != nil && f.InStock != *c.InStock {
		return false
	}
	if c.Query != "" && !MatchesQuery(f, c.Query) {
		return false
	}
	return true
}

// SunglassesCriteria extends the frame criteria with lens constraints
type SunglassesCriteria struct {
	FrameCriteria
	Polarized *bool
}

// Matches tests one pair of sunglasses against every present constraint
func (c SunglassesCriteria) Matches(s models.Sunglasses) bool {
	if !c.FrameCriteria.Matches(s.Frame) {
		return false
	}
	if c.Polarized != nil && s.LensFeatures.Polarized != *c.Polarized {
		return false
	}
	return true
}

// MatchesQuery runs the case-insensitive free-text search over a frame's
// name, brand, description, color and each feature.
func MatchesQuery(f models.Frame, q string) bool {
	if containsFold(f.Name, q) || containsFold(f.Brand, q) ||
		containsFold(f.Description, q) || containsFold(f.Color, q) {
		return true
	}
	for _, feature := range f.Features {
		if containsFold(feature, q) {
			return true
		}
	}
	return false
}

// FilterFrames returns the frames satisfying the criteria, in input order
func FilterFrames(items []models.Frame, c FrameCriteria) []models.Frame {
	out := make([]models.Frame, 0, len(items))
	for _, f := range items {
		if c.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// FilterSunglasses returns the sunglasses satisfying the criteria, in
// input order.
func FilterSunglasses(items []models.Sunglasses, c SunglassesCriteria) []models.Sunglasses {
	out := make([]models.Sunglasses, 0, len(items))
	for _, s := range items {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// SearchFrames returns the frames matching a free-text query
func SearchFrames(items []models.Frame, q string) []models.Frame {
	if q == "" {
		out := make([]models.Frame, len(items))
		copy(out, items)
		return out
	}
	out := make([]models.Frame, 0, len(items))
	for _, f := range items {
		if MatchesQuery(f, q) {
			out = append(out, f)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
