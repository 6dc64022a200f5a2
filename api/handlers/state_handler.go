package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/internal/app"
)

const (
	stateWriteTimeout = 10 * time.Second
	statePingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StateHandler exposes the UI state
type StateHandler struct {
	downloadMgr *app.DownloadManager
	logger      *zap.Logger
}

// NewStateHandler creates a new state handler
func NewStateHandler(downloadMgr *app.DownloadManager, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		downloadMgr: downloadMgr,
		logger:      logger,
	}
}

// SetURLRequest carries new widget input
type SetURLRequest struct {
	URL string `json:"url"`
}

// Get handles GET /api/v1/state
func (h *StateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.downloadMgr.State())
}

// SetURL handles PUT /api/v1/state/url
func (h *StateHandler) SetURL(c *gin.Context) {
	var req SetURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.downloadMgr.SetURL(req.URL)
	c.JSON(http.StatusOK, h.downloadMgr.State())
}

// Stream handles GET /api/v1/state/ws, pushing every state change as JSON
func (h *StateHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade WebSocket", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Debug("State stream connected", zap.String("remote_addr", c.Request.RemoteAddr))

	states, cancel := h.downloadMgr.Subscribe()
	defer cancel()

	// Reader goroutine only detects disconnects
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(statePingInterval)
	defer ticker.Stop()

	for {
		select {
		case state := <-states:
			conn.SetWriteDeadline(time.Now().Add(stateWriteTimeout))
			if err := conn.WriteJSON(state); err != nil {
				h.logger.Debug("State stream closed", zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(stateWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
