package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yourusername/social-dl-go/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	adapter := logger.NewSingleLoggerAdapter(zap.New(core))

	router := gin.New()
	router.Use(Logger(adapter), Recovery(adapter), CORS())
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	return router, logs
}

func TestLogger_LogsRequest(t *testing.T) {
	router, logs := newTestEngine(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("HTTP request").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
}

func TestRecovery_ReturnsJSON500(t *testing.T) {
	router, logs := newTestEngine(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
	assert.Equal(t, 1, logs.FilterMessage("HTTP error response").Len())
}

func TestCORS(t *testing.T) {
	router, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ok", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
