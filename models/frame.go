package models

// Gender values used by catalog items. Unisex items match every gender filter.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// FrameSize holds the three standard frame measurements in millimeters
type FrameSize struct {
	LensWidth    float64 `json:"lensWidth"`
	BridgeWidth  float64 `json:"bridgeWidth"`
	TempleLength float64 `json:"templeLength"`
}

// Frame represents a single eyeglass frame in the catalog
type Frame struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Material    string    `json:"material"`
	Shape       string    `json:"shape"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Gender      string    `json:"gender"`
	Price       float64   `json:"price"`
	InStock     bool      `json:"inStock"`
	Features    []string  `json:"features"`
	FrameSize   FrameSize `json:"frameSize"`
	Images      []string  `json:"images"`
	// ImageURL is a deprecated single-image mirror of Images[0], kept for
	// older clients. NormalizeImages keeps the two in sync.
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"` // RFC3339
}

// NormalizeImages re-establishes the images/imageUrl invariant:
// empty images list means empty imageUrl, otherwise imageUrl == images[0].
func (f *Frame) NormalizeImages() {
	if len(f.Images) == 0 {
		f.ImageURL = ""
		return
	}
	f.ImageURL = f.Images[0]
}

// FrameUpdateRequest represents a partial update for a frame. Nil pointer
// fields are left untouched on the existing record.
type FrameUpdateRequest struct {
	Name        *string    `json:"name"`
	Brand       *string    `json:"brand"`
	Category    *string    `json:"category"`
	Material    *string    `json:"material"`
	Shape       *string    `json:"shape"`
	Color       *string    `json:"color"`
	Description *string    `json:"description"`
	Gender      *string    `json:"gender"`
	Price       *float64   `json:"price"`
	InStock     *bool      `json:"inStock"`
	Features    *[]string  `json:"features"`
	FrameSize   *FrameSize `json:"frameSize"`
	Images      *[]string  `json:"images"`
}

// ApplyTo merges the populated fields onto an existing frame.
func (u *FrameUpdateRequest) ApplyTo(f *Frame) {
	if u.Name != nil {
		f.Name = *u.Name
	}
	if u.Brand != nil {
		f.Brand = *u.Brand
	}
	if u.Category != nil {
		f.Category = *u.Category
	}
	if u.Material != nil {
		f.Material = *u.Material
	}
	if u.Shape != nil {
		f.Shape = *u.Shape
	}
	if u.Color != nil {
		f.Color = *u.Color
	}
	if u.Description != nil {
		f.Description = *u.Description
	}
	if u.Gender != nil {
		f.Gender = *u.Gender
	}
	if u.Price != nil {
		f.Price = *u.Price
	}
	if u.InStock != nil {
		f.InStock = *u.InStock
	}
	if u.Features != nil {
		f.Features = *u.Features
	}
	if u.FrameSize != nil {
		f.FrameSize = *u.FrameSize
	}
	if u.Images != nil {
		f.Images = *u.Images
	}
	f.NormalizeImages()
}
