package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/internal/domain"
)

func TestStateHandler_GetInitialState(t *testing.T) {
	h := NewStateHandler(newTestManager(), zap.NewNop())

	w := performJSON(t, h.Get, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"url":"","platform":"unknown","isLoading":false,"message":"","downloadUrl":null}`,
		w.Body.String())
}

func TestStateHandler_SetURL(t *testing.T) {
	dm := newTestManager()
	h := NewStateHandler(dm, zap.NewNop())

	w := performJSON(t, h.SetURL, http.MethodPut, "/api/v1/state/url",
		SetURLRequest{URL: "https://www.instagram.com/reel/xyz"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"platform":"instagram"`)

	state := dm.State()
	assert.Equal(t, "https://www.instagram.com/reel/xyz", state.URL)
	assert.Equal(t, domain.PlatformInstagram, state.Platform)
}

func TestStateHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dm := newTestManager()
	h := NewStateHandler(dm, zap.NewNop())

	router := gin.New()
	router.GET("/api/v1/state/ws", h.Stream)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/state/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The first snapshot is the current state; later ones follow SetURL
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var initial domain.State
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, domain.PlatformUnknown, initial.Platform)

	dm.SetURL("https://facebook.com/watch/1")

	var state domain.State
	require.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, "https://facebook.com/watch/1", state.URL)
	assert.Equal(t, domain.PlatformFacebook, state.Platform)
}
