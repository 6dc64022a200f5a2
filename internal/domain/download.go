package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User-facing messages surfaced through the UI state
const (
	MessageInvalidURL    = "Please enter a valid URL."
	MessageReady         = "Video ready for download!"
	MessageFailed        = "Failed to process the video"
	MessageRequestFailed = "An error occurred while processing your request"
)

// ErrSubmissionInProgress is returned when a submission arrives while another is pending
var ErrSubmissionInProgress = errors.New("a download request is already in progress")

// DownloadStatus represents the current status of a submission
type DownloadStatus string

const (
	StatusProcessing DownloadStatus = "processing"
	StatusCompleted  DownloadStatus = "completed"
	StatusFailed     DownloadStatus = "failed"
	StatusRejected   DownloadStatus = "rejected" // blank URL, never reached the downloader
)

// Download represents a single submission
type Download struct {
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	Platform    Platform       `json:"platform"`
	Status      DownloadStatus `json:"status"`
	DownloadURL string         `json:"download_url,omitempty"`
	Message     string         `json:"message,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// NewDownload creates a new submission record
func NewDownload(url string, platform Platform) *Download {
	now := time.Now()
	return &Download{
		ID:        uuid.New().String(),
		URL:       url,
		Platform:  platform,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkRejected marks the submission as rejected by input validation
func (d *Download) MarkRejected(message string) {
	d.Status = StatusRejected
	d.Message = message
	d.UpdatedAt = time.Now()
}

// MarkProcessing marks the submission as waiting on the downloader
func (d *Download) MarkProcessing() {
	d.Status = StatusProcessing
	now := time.Now()
	d.StartedAt = &now
	d.UpdatedAt = now
}

// MarkCompleted marks the submission as completed with a download link
func (d *Download) MarkCompleted(downloadURL, message string) {
	d.Status = StatusCompleted
	d.DownloadURL = downloadURL
	d.Message = message
	now := time.Now()
	d.CompletedAt = &now
	d.UpdatedAt = now
}

// MarkFailed marks the submission as failed
func (d *Download) MarkFailed(message string) {
	d.Status = StatusFailed
	d.Message = message
	now := time.Now()
	d.CompletedAt = &now
	d.UpdatedAt = now
}

// IsTerminal checks if the submission has settled
func (d *Download) IsTerminal() bool {
	return d.Status == StatusCompleted || d.Status == StatusFailed || d.Status == StatusRejected
}

// IsProcessing checks if the submission is still waiting on the downloader
func (d *Download) IsProcessing() bool {
	return d.Status == StatusProcessing
}

// Result returns the submission outcome in the downloader result shape
func (d *Download) Result() *Result {
	return &Result{
		Success:     d.Status == StatusCompleted,
		DownloadURL: d.DownloadURL,
		Message:     d.Message,
	}
}
