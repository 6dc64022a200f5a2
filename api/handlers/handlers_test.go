package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/internal/domain"
	"github.com/yourusername/social-dl-go/internal/infrastructure"
)

// blockingDownloader holds every call until release is closed
type blockingDownloader struct {
	started chan struct{}
	release chan struct{}
	result  *domain.Result
}

func newBlockingDownloader() *blockingDownloader {
	return &blockingDownloader{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  &domain.Result{Success: true, DownloadURL: "https://download/x"},
	}
}

func (d *blockingDownloader) Name() string { return "blocking" }

func (d *blockingDownloader) Download(ctx context.Context, url string, platform domain.Platform) (*domain.Result, error) {
	d.started <- struct{}{}
	<-d.release
	return d.result, nil
}

func newTestManager() *app.DownloadManager {
	return app.NewDownloadManager(infrastructure.NewMockDownloader("https://download", 0), nil, nil)
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	router := gin.New()
	router.Handle(method, path, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestDownloadHandler_SubmitSuccess(t *testing.T) {
	dm := newTestManager()
	h := NewDownloadHandler(dm)

	w := performJSON(t, h.Submit, http.MethodPost, "/api/v1/downloads",
		SubmitRequest{URL: "https://youtu.be/abc"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusCompleted, resp.Status)
	assert.Equal(t, domain.PlatformYouTube, resp.Platform)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Success)
	assert.Equal(t, "https://download?url=https%3A%2F%2Fyoutu.be%2Fabc&platform=youtube", resp.Result.DownloadURL)

	assert.False(t, resp.State.IsLoading)
	assert.Equal(t, domain.MessageReady, resp.State.Message)
	require.NotNil(t, resp.State.DownloadURL)
	assert.Equal(t, resp.Result.DownloadURL, *resp.State.DownloadURL)
}

func TestDownloadHandler_SubmitBlankURL(t *testing.T) {
	dm := newTestManager()
	h := NewDownloadHandler(dm)

	w := performJSON(t, h.Submit, http.MethodPost, "/api/v1/downloads", SubmitRequest{URL: "   "})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusRejected, resp.Status)
	assert.Equal(t, domain.MessageInvalidURL, resp.State.Message)
	assert.False(t, resp.State.IsLoading)
	assert.Nil(t, resp.State.DownloadURL)
}

func TestDownloadHandler_SubmitMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDownloadHandler(newTestManager())

	router := gin.New()
	router.POST("/api/v1/downloads", h.Submit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/downloads", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadHandler_SubmitWhileBusy(t *testing.T) {
	downloader := newBlockingDownloader()
	dm := app.NewDownloadManager(downloader, nil, nil)
	h := NewDownloadHandler(dm)

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- performJSON(t, h.Submit, http.MethodPost, "/api/v1/downloads",
			SubmitRequest{URL: "https://instagram.com/p/1"})
	}()
	<-downloader.started

	w := performJSON(t, h.Submit, http.MethodPost, "/api/v1/downloads",
		SubmitRequest{URL: "https://facebook.com/v/2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Error string       `json:"error"`
		State domain.State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrSubmissionInProgress.Error(), body.Error)
	assert.True(t, body.State.IsLoading)

	close(downloader.release)
	assert.Equal(t, http.StatusOK, (<-first).Code)
	assert.False(t, dm.State().IsLoading)
}

func TestDownloadHandler_SubmitOutlivesClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dm := app.NewDownloadManager(infrastructure.NewMockDownloader("https://download", 150*time.Millisecond), nil, nil)
	h := NewDownloadHandler(dm)

	router := gin.New()
	router.POST("/api/v1/downloads", h.Submit)

	// The client gives up long before the backend answers
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/downloads",
		bytes.NewBufferString(`{"url":"https://youtu.be/abc"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Error(t, ctx.Err())
	state := dm.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, domain.MessageReady, state.Message)
	require.NotNil(t, state.DownloadURL)
	assert.Equal(t, "https://download?url=https%3A%2F%2Fyoutu.be%2Fabc&platform=youtube", *state.DownloadURL)
}

func TestPlatformHandler_List(t *testing.T) {
	h := NewPlatformHandler()
	w := performJSON(t, h.List, http.MethodGet, "/api/v1/platforms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Platforms []PlatformInfo `json:"platforms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Platforms, 3)
	assert.Equal(t, domain.PlatformYouTube, resp.Platforms[0].Platform)
	assert.Equal(t, domain.PlatformInstagram, resp.Platforms[1].Platform)
	assert.Equal(t, domain.PlatformFacebook, resp.Platforms[2].Platform)
	require.NotNil(t, resp.Platforms[0].Icon)
	assert.Equal(t, "#fa0000", resp.Platforms[0].Icon.Color)
}

func TestPlatformHandler_Detect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPlatformHandler()
	router := gin.New()
	router.GET("/api/v1/platforms/detect", h.Detect)

	tests := []struct {
		url      string
		expected domain.Platform
	}{
		{"https://www.youtube.com/watch?v=1", domain.PlatformYouTube},
		{"https://instagram.com/reel/1", domain.PlatformInstagram},
		{"https://facebook.com/watch/1", domain.PlatformFacebook},
		{"https://YOUTUBE.COM/x", domain.PlatformUnknown},
		{"", domain.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/platforms/detect?url="+tt.url, nil)
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.expected), resp["platform"])
		})
	}
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(newTestManager())

	w := performJSON(t, h.Health, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.Equal(t, "mock", resp.Backend)
	assert.False(t, resp.Busy)

	w = performJSON(t, h.Ready, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_NotReadyWithoutBackend(t *testing.T) {
	h := NewHealthHandler(app.NewDownloadManager(nil, nil, nil))

	w := performJSON(t, h.Ready, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
