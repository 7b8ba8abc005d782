package router

import (
	"net/http"

	"optica-vista-me/app/controller"
)

// Controllers bundles everything the router wires up
type Controllers struct {
	Catalog *controller.CatalogController
	Company *controller.CompanyController
	Image   *controller.ImageController
	Inquiry *controller.InquiryController
	Contact *controller.ContactController
	Export  *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog collections (whole-document GET/POST)
	http.HandleFunc("/api/frames", controllers.Catalog.Frames)
	http.HandleFunc("/api/sunglasses", controllers.Catalog.Sunglasses)

	// Per-record admin routes
	http.HandleFunc("/api/frames/", controllers.Catalog.FrameByID)
	http.HandleFunc("/api/sunglasses/", controllers.Catalog.SunglassesByID)

	// Company profile singleton
	http.HandleFunc("/api/company", controllers.Company.Company)

	// Image storage
	http.HandleFunc("/api/upload-image", controllers.Image.Upload)
	http.HandleFunc("/api/delete-image", controllers.Image.Delete)
	http.HandleFunc("/images/", controllers.Image.Serve)

	// Customer inquiries
	http.HandleFunc("/api/inquiries", controllers.Inquiry.Inquiries)
	http.HandleFunc("/api/inquiries/", controllers.Inquiry.InquiryByID)

	// Contact form submissions
	http.HandleFunc("/api/contacts", controllers.Contact.Contacts)
	http.HandleFunc("/api/contacts/", controllers.Contact.ContactByID)

	// Printable catalog
	http.HandleFunc("/admin/catalog/render", controllers.Export.Render)
	http.HandleFunc("/admin/catalog/export", controllers.Export.Export)
}
