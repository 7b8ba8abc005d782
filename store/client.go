package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"optica-vista-me/models"
)

// Client talks to the catalog REST backend. Every call takes a context so
// callers can cancel or bound it; the underlying HTTP client also carries
// a default timeout so a hung backend cannot hang a caller forever.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s returned status %d", path, resp.StatusCode)
	}
	return nil
}

// FetchFrames retrieves the full frames collection
func (c *Client) FetchFrames(ctx context.Context) ([]models.Frame, error) {
	var frames []models.Frame
	if err := c.getJSON(ctx, "/api/frames", &frames); err != nil {
		return nil, err
	}
	return frames, nil
}

// FetchSunglasses retrieves the full sunglasses collection
func (c *Client) FetchSunglasses(ctx context.Context) ([]models.Sunglasses, error) {
	var items []models.Sunglasses
	if err := c.getJSON(ctx, "/api/sunglasses", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchCompany retrieves the company profile singleton
func (c *Client) FetchCompany(ctx context.Context) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := c.getJSON(ctx, "/api/company", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// PostFrames replaces the whole frames collection on the backend.
// There is no merge and no concurrency check: last write wins.
func (c *Client) PostFrames(ctx context.Context, frames []models.Frame) error {
	return c.postJSON(ctx, "/api/frames", frames)
}

// PostSunglasses replaces the whole sunglasses collection on the backend
func (c *Client) PostSunglasses(ctx context.Context, items []models.Sunglasses) error {
	return c.postJSON(ctx, "/api/sunglasses", items)
}

// PostCompany replaces the company profile singleton on the backend
func (c *Client) PostCompany(ctx context.Context, profile models.CompanyProfile) error {
	return c.postJSON(ctx, "/api/company", profile)
}

// UploadImage sends one image to the backend upload endpoint and returns
// the stored web path.
func (c *Client) UploadImage(ctx context.Context, data []byte, fileName, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("failed to write folder field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload returned status %d: %s", resp.StatusCode, msg)
	}

	var result struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return result.Path, nil
}

// DeleteImage asks the backend to release one stored image
func (c *Client) DeleteImage(ctx context.Context, imagePath string) error {
	body, err := json.Marshal(map[string]string{"imagePath": imagePath})
	if err != nil {
		return fmt.Errorf("failed to serialize delete body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/delete-image", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("DELETE /api/delete-image returned status %d", resp.StatusCode)
	}
	return nil
}

// ReleaseImage satisfies the ImageReleaser contract used by record
// mutations.
func (c *Client) ReleaseImage(ctx context.Context, imagePath string) error {
	return c.DeleteImage(ctx, imagePath)
}
