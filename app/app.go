package app

import (
	"fmt"

	"optica-vista-me/app/controller"
	"optica-vista-me/app/router"
	"optica-vista-me/config"
	"optica-vista-me/db"
	"optica-vista-me/repository"
	"optica-vista-me/service"
)

// Initialize wires the data store, repositories, services and routes
func Initialize(cfg *config.Config) error {
	// Initialize the JSON document store
	store, err := db.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize data store: %w", err)
	}

	// Initialize image storage
	imageService, err := service.NewImageService(cfg.ImageDir)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Initialize repositories
	frameRepo := repository.NewFrameRepository(store)
	sunglassesRepo := repository.NewSunglassesRepository(store)
	companyRepo := repository.NewCompanyRepository(store)
	inquiryRepo := repository.NewInquiryRepository(store)
	contactRepo := repository.NewContactRepository(store)

	// Initialize catalog export
	exportService := service.NewExportService(frameRepo, companyRepo, cfg.ImageDir, cfg.BaseURL, cfg.ChromePath)

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(frameRepo, sunglassesRepo, imageService),
		Company: controller.NewCompanyController(companyRepo),
		Image:   controller.NewImageController(imageService),
		Inquiry: controller.NewInquiryController(inquiryRepo),
		Contact: controller.NewContactController(contactRepo),
		Export:  controller.NewExportController(exportService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
