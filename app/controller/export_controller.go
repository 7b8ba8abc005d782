package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"optica-vista-me/service"
)

// ExportController handles printable catalog generation
type ExportController struct {
	exportService service.ExportServiceInterface
}

// NewExportController creates a new ExportController
func NewExportController(exportService service.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

// Render handles GET /admin/catalog/render. It serves the print-ready
// HTML that the PDF exporter loads in headless Chrome; it is also handy
// for eyeballing the layout in a normal browser.
func (c *ExportController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := c.exportService.RenderCatalogHTML(r.Context())
	if err != nil {
		log.Printf("❌ Render: Error rendering catalog: %v", err)
		http.Error(w, "Failed to render catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// Export handles POST /admin/catalog/export and returns the catalog PDF
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Printf("🖨️  Catalog PDF export requested")
	started := time.Now()

	pdf, err := c.exportService.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ Export: Error generating PDF: %v", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("catalog-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.Write(pdf)

	log.Printf("✅ Catalog PDF generated: %d bytes in %s", len(pdf), time.Since(started).Round(time.Millisecond))
}
