package infrastructure

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/yourusername/social-dl-go/internal/domain"
)

// MockDownloader stands in for a real backend: it waits a fixed delay and
// always succeeds with a link that embeds the request.
type MockDownloader struct {
	endpoint string
	delay    time.Duration
}

// NewMockDownloader creates a mock downloader that builds links against endpoint
func NewMockDownloader(endpoint string, delay time.Duration) *MockDownloader {
	return &MockDownloader{
		endpoint: endpoint,
		delay:    delay,
	}
}

// Name returns the backend name
func (d *MockDownloader) Name() string {
	return domain.BackendMock
}

// Download resolves after the configured delay. It only gives up early when ctx
// ends, which the server never does for submissions it accepted.
func (d *MockDownloader) Download(ctx context.Context, videoURL string, platform domain.Platform) (*domain.Result, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &domain.Result{
		Success:     true,
		DownloadURL: BuildDownloadURL(d.endpoint, videoURL, platform),
		Message:     "Video ready for download",
	}, nil
}

// BuildDownloadURL embeds the escaped video URL and platform as query parameters of endpoint
func BuildDownloadURL(endpoint, videoURL string, platform domain.Platform) string {
	return fmt.Sprintf("%s?url=%s&platform=%s", endpoint, escapeComponent(videoURL), platform)
}

// componentUnescapes are left literal by browsers' encodeURIComponent but escaped by QueryEscape
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent escapes s the way the widget's browser code does
func escapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
