// Package parseapi provides an extraction adapter for the document parse
// backend. It uploads PDF files via multipart POST and decodes the per-file
// results defensively: a malformed or failed entry never fails the whole
// upload.
package parseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Extractor = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout = 300 * time.Second

	// DefaultRequestsPerSecond keeps uploads well under the backend's
	// quota; extraction is slow anyway.
	DefaultRequestsPerSecond = 0.5
	DefaultBurstSize         = 1
)

// Config holds configuration for the parse backend client.
type Config struct {
	// BaseURL is the backend base URL (required), e.g. http://localhost:8000.
	BaseURL string

	// APIKey is sent as a bearer token when set.
	APIKey string

	// Timeout is the request timeout (default: 300s). Uploads block until
	// the backend has finished extraction.
	Timeout time.Duration

	// RequestsPerSecond is the sustained upload rate (default: 0.5).
	RequestsPerSecond float64

	// BurstSize is the token bucket burst size (default: 1).
	BurstSize int
}

// Client uploads PDFs to the parse backend.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// uploadResponse is the backend's /upload-pdf response format.
type uploadResponse struct {
	Results []domain.ExtractionResult `json:"results"`
}

// New creates a new parse backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("parseapi: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}, nil
}

// Extract uploads the files and returns one result per file the backend
// reports on, in upload order.
func (c *Client) Extract(ctx context.Context, paths []string) ([]domain.ExtractionResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	body, contentType, err := multipartBody(paths)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-pdf", body)
	if err != nil {
		return nil, fmt.Errorf("parseapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parseapi: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("parseapi: backend returned %d: %s", resp.StatusCode, msg)
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("parseapi: decode response: %w", err)
	}
	return decoded.Results, nil
}

// multipartBody builds a multipart form with one "files" part per path.
func multipartBody(paths []string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("parseapi: open %s: %w", path, err)
		}
		part, err := writer.CreateFormFile("files", filepath.Base(path))
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("parseapi: form file: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("parseapi: read %s: %w", path, err)
		}
		f.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("parseapi: finish form: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
