package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/internal/domain"
)

// DownloadHandler handles download submissions
type DownloadHandler struct {
	downloadMgr *app.DownloadManager
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(downloadMgr *app.DownloadManager) *DownloadHandler {
	return &DownloadHandler{downloadMgr: downloadMgr}
}

// SubmitRequest represents a request to submit a download.
// URL may be empty; blank input is reported through the state.
type SubmitRequest struct {
	URL string `json:"url"`
}

// SubmitResponse is returned for every settled submission
type SubmitResponse struct {
	ID       string                `json:"id"`
	Status   domain.DownloadStatus `json:"status"`
	Platform domain.Platform       `json:"platform"`
	Result   *domain.Result        `json:"result"`
	State    domain.State          `json:"state"`
}

// Submit handles POST /api/v1/downloads
func (h *DownloadHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The state is shared with every viewer, so a client hanging up must not
	// abort the submission it started.
	download, err := h.downloadMgr.Submit(context.WithoutCancel(c.Request.Context()), req.URL)
	if errors.Is(err, domain.ErrSubmissionInProgress) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"state": h.downloadMgr.State(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		ID:       download.ID,
		Status:   download.Status,
		Platform: download.Platform,
		Result:   download.Result(),
		State:    h.downloadMgr.State(),
	})
}
