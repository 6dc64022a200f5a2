package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yourusername/social-dl-go/internal/domain"
)

// maxResponseSize bounds how much of a backend response is read
const maxResponseSize = 1 << 20

// HTTPDownloader asks a download backend for a link over HTTP.
// It POSTs {"url","platform"} and expects {"success","downloadUrl","message"}.
type HTTPDownloader struct {
	endpoint string
	client   *http.Client
}

// downloadRequest is the body sent to the backend
type downloadRequest struct {
	URL      string          `json:"url"`
	Platform domain.Platform `json:"platform"`
}

// NewHTTPDownloader creates a downloader for the backend at endpoint
func NewHTTPDownloader(endpoint string, timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the backend name
func (d *HTTPDownloader) Name() string {
	return domain.BackendHTTP
}

// Download requests a link from the backend
func (d *HTTPDownloader) Download(ctx context.Context, videoURL string, platform domain.Platform) (*domain.Result, error) {
	body, err := json.Marshal(downloadRequest{URL: videoURL, Platform: platform})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var result domain.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	if result.Success && result.DownloadURL == "" {
		return nil, fmt.Errorf("backend reported success without a download url")
	}
	if !result.Success {
		result.DownloadURL = ""
	}

	return &result, nil
}
