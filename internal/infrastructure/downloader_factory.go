package infrastructure

import (
	"fmt"

	"github.com/yourusername/social-dl-go/internal/domain"
)

// NewDownloader builds the download backend selected by config
func NewDownloader(config *domain.DownloadConfig) (domain.Downloader, error) {
	switch config.Backend {
	case domain.BackendMock, "":
		return NewMockDownloader(config.Endpoint, config.MockDelay), nil
	case domain.BackendHTTP:
		return NewHTTPDownloader(config.Endpoint, config.RequestTimeout), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBackend, config.Backend)
	}
}
