package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/internal/infrastructure"
	"github.com/yourusername/social-dl-go/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dm := app.NewDownloadManager(infrastructure.NewMockDownloader("https://download", 0), nil, nil)
	return SetupRouter(dm, logger.NewSingleLoggerAdapter(zap.NewNop()), t.TempDir())
}

func TestSetupRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/api/v1/platforms", "", http.StatusOK},
		{http.MethodGet, "/api/v1/platforms/detect?url=https://youtu.be/x", "", http.StatusOK},
		{http.MethodGet, "/api/v1/state", "", http.StatusOK},
		{http.MethodPut, "/api/v1/state/url", `{"url":"https://youtu.be/x"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/downloads", `{"url":"https://youtu.be/x"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/logs/categories", "", http.StatusOK},
		{http.MethodGet, "/api/v1/logs/download", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/static/app.js", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSetupRouter_ServesWidget(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Social Video Downloader")
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/downloads", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
