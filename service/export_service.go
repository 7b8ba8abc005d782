package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"optica-vista-me/models"
	"optica-vista-me/repository"
	"optica-vista-me/utils"
)

const exportItemsPerPage = 9

// ExportService renders the frame catalog as a printable PDF via headless
// Chrome. The HTML is served from the render endpoint and printed with
// the Chrome DevTools protocol.
// Implements ExportServiceInterface
type ExportService struct {
	frames     repository.FrameRepositoryInterface
	company    repository.CompanyRepositoryInterface
	imageDir   string
	baseURL    string // base URL of this server, e.g. "http://localhost:8080"
	chromePath string
}

// NewExportService creates a new ExportService. An empty chromePath falls
// back to CHROME_PATH and then to common install locations.
func NewExportService(
	frames repository.FrameRepositoryInterface,
	company repository.CompanyRepositoryInterface,
	imageDir, baseURL, chromePath string,
) *ExportService {
	return &ExportService{
		frames:     frames,
		company:    company,
		imageDir:   imageDir,
		baseURL:    baseURL,
		chromePath: chromePath,
	}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// BuildExportData loads the catalog and inlines each frame's main image
// as base64 so the printed document has no external references.
func (s *ExportService) BuildExportData(ctx context.Context) (*models.CatalogExportData, error) {
	frames, err := s.frames.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load frames for export: %w", err)
	}

	companyName := "Catalog"
	if profile, err := s.company.Get(ctx); err == nil && profile != nil && profile.Name != "" {
		companyName = profile.Name
	}

	items := make([]models.CatalogExportItem, 0, len(frames))
	for _, f := range frames {
		item := models.CatalogExportItem{
			Name:         f.Name,
			Brand:        f.Brand,
			SKU:          f.ID,
			PriceDisplay: utils.FormatUSD(f.Price),
			Material:     f.Material,
			Shape:        f.Shape,
			Color:        f.Color,
			InStock:      f.InStock,
		}
		if f.ImageURL != "" {
			dataURI, err := s.imageAsDataURI(f.ImageURL)
			if err != nil {
				// A missing image degrades that entry, never the export.
				log.Printf("⚠️  Export: could not inline image %s: %v", f.ImageURL, err)
			} else {
				item.ImageBase64 = dataURI
			}
		}
		items = append(items, item)
	}

	pageCount := (len(items) + exportItemsPerPage - 1) / exportItemsPerPage
	return &models.CatalogExportData{
		CompanyName: companyName,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Items:       items,
		PageCount:   pageCount,
	}, nil
}

// imageAsDataURI inlines one image as a data URI. Store-owned paths are
// read from disk; external URLs are fetched; data URIs pass through.
func (s *ExportService) imageAsDataURI(imageURL string) (string, error) {
	if utils.IsDataURI(imageURL) {
		return imageURL, nil
	}

	var data []byte
	if utils.IsExternalURL(imageURL) {
		resp, err := http.Get(imageURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch image: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
		}
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read image body: %w", err)
		}
	} else {
		diskPath := filepath.Join(s.imageDir, filepath.Clean(trimImagePrefix(imageURL)))
		var err error
		data, err = os.ReadFile(diskPath)
		if err != nil {
			return "", fmt.Errorf("failed to read stored image: %w", err)
		}
	}

	// Thumbnails keep the rendered document small.
	optimized, err := OptimizeImage(data, "thumb")
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(optimized), nil
}

func trimImagePrefix(webPath string) string {
	if len(webPath) > len(imageWebPrefix) && webPath[:len(imageWebPrefix)] == imageWebPrefix {
		return webPath[len(imageWebPrefix):]
	}
	return webPath
}

// paginateExportItems splits items into pages of 9 items each
func paginateExportItems(items []models.CatalogExportItem) [][]models.CatalogExportItem {
	var pages [][]models.CatalogExportItem
	for i := 0; i < len(items); i += exportItemsPerPage {
		end := i + exportItemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// RenderCatalogHTML renders the printable catalog HTML
func (s *ExportService) RenderCatalogHTML(ctx context.Context) (string, error) {
	data, err := s.BuildExportData(ctx)
	if err != nil {
		return "", err
	}

	templateData := struct {
		CompanyName string
		GeneratedAt string
		Pages       [][]models.CatalogExportItem
	}{
		CompanyName: data.CompanyName,
		GeneratedAt: data.GeneratedAt,
		Pages:       paginateExportItems(data.Items),
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the rendered catalog to PDF using chromedp
func (s *ExportService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	chromePath := s.chromePath
	if chromePath == "" {
		chromePath = detectChromePath()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render", s.baseURL)
	log.Printf("🖨️  Printing catalog from %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(time.Second), // let images and fonts settle
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69". Page breaks come from CSS.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✅ Catalog PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
