package domain

import (
	"context"
	"errors"
)

// ErrUnknownBackend is returned when the configured download backend does not exist
var ErrUnknownBackend = errors.New("unknown download backend")

// Downloader is the download operation behind a submission.
// A returned error is a transport failure; a logical failure is a Result with Success=false.
type Downloader interface {
	// Download requests a download link for url on the given platform
	Download(ctx context.Context, url string, platform Platform) (*Result, error)

	// Name returns the backend name
	Name() string
}

// Result is the outcome reported by a Downloader.
// DownloadURL is present iff Success.
type Result struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}
