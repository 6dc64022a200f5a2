package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/pkg/logger"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 1000
)

// LogHandler handles log-related requests
type LogHandler struct {
	logReader *logger.LogReader
	logger    *zap.Logger
}

// NewLogHandler creates a new log handler
func NewLogHandler(logsDir string, log *zap.Logger) *LogHandler {
	return &LogHandler{
		logReader: logger.NewLogReader(logsDir),
		logger:    log,
	}
}

// GetCategories handles GET /api/v1/logs/categories
func (h *LogHandler) GetCategories(c *gin.Context) {
	categories := []string{}
	for _, category := range logger.Categories() {
		categories = append(categories, string(category))
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetLogs handles GET /api/v1/logs/:category
func (h *LogHandler) GetLogs(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	date, ok := h.date(c)
	if !ok {
		return
	}

	entries, err := h.logReader.ReadLogs(category, date, h.limit(c))
	if err != nil {
		h.logger.Error("Failed to read logs", zap.String("category", string(category)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"date":     date.Format("2006-01-02"),
		"count":    len(entries),
		"entries":  entries,
	})
}

// SearchLogs handles GET /api/v1/logs/:category/search
func (h *LogHandler) SearchLogs(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	date, ok := h.date(c)
	if !ok {
		return
	}

	entries, err := h.logReader.SearchLogs(category, date, query, h.limit(c))
	if err != nil {
		h.logger.Error("Failed to search logs", zap.String("category", string(category)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"query":    query,
		"count":    len(entries),
		"entries":  entries,
	})
}

// ExportLogs handles GET /api/v1/logs/:category/export
func (h *LogHandler) ExportLogs(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}
	date, ok := h.date(c)
	if !ok {
		return
	}

	filename := string(category) + "-" + date.Format("20060102") + ".log"
	c.FileAttachment(h.logReader.GetLogPath(category, date), filename)
}

// StreamLogs handles GET /api/v1/logs/:category/stream, tailing today's file over a WebSocket
func (h *LogHandler) StreamLogs(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade WebSocket", zap.Error(err))
		return
	}
	defer conn.Close()

	entries := make(chan logger.LogEntry, 100)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		if err := h.logReader.TailLogs(category, entries, stop); err != nil {
			h.logger.Warn("Log tailing error", zap.Error(err))
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entry := <-entries:
			conn.SetWriteDeadline(time.Now().Add(stateWriteTimeout))
			if err := conn.WriteJSON(entry); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *LogHandler) category(c *gin.Context) (logger.LogCategory, bool) {
	category := logger.LogCategory(c.Param("category"))
	if !logger.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return "", false
	}
	return category, true
}

func (h *LogHandler) date(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *LogHandler) limit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogLimit)))
	if err != nil || limit < 0 {
		return defaultLogLimit
	}
	if limit > maxLogLimit {
		return maxLogLimit
	}
	return limit
}
