package models

// CatalogExportItem represents a single frame on the printable catalog
type CatalogExportItem struct {
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	SKU          string `json:"sku"`
	PriceDisplay string `json:"priceDisplay"`
	ImageBase64  string `json:"imageBase64"` // inlined for PDF generation
	Material     string `json:"material"`
	Shape        string `json:"shape"`
	Color        string `json:"color"`
	InStock      bool   `json:"inStock"`
}

// CatalogExportData is the data structure passed to the catalog template
type CatalogExportData struct {
	CompanyName string              `json:"companyName"`
	GeneratedAt string              `json:"generatedAt"`
	Items       []CatalogExportItem `json:"items"`
	PageCount   int                 `json:"pageCount"`
}
