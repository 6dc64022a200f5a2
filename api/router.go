package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/social-dl-go/api/handlers"
	"github.com/yourusername/social-dl-go/api/middleware"
	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/pkg/logger"
	"github.com/yourusername/social-dl-go/web"
)

// SetupRouter sets up the HTTP router
func SetupRouter(
	downloadMgr *app.DownloadManager,
	logAdapter *logger.LoggerAdapter,
	logsDir string,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Logger(logAdapter))
	router.Use(middleware.Recovery(logAdapter))
	router.Use(middleware.CORS())

	healthHandler := handlers.NewHealthHandler(downloadMgr)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		platformHandler := handlers.NewPlatformHandler()
		v1.GET("/platforms", platformHandler.List)
		v1.GET("/platforms/detect", platformHandler.Detect)

		stateHandler := handlers.NewStateHandler(downloadMgr, logAdapter.General())
		state := v1.Group("/state")
		{
			state.GET("", stateHandler.Get)
			state.PUT("/url", stateHandler.SetURL)
			state.GET("/ws", stateHandler.Stream)
		}

		downloadHandler := handlers.NewDownloadHandler(downloadMgr)
		v1.POST("/downloads", downloadHandler.Submit)

		logHandler := handlers.NewLogHandler(logsDir, logAdapter.General())
		logs := v1.Group("/logs")
		{
			logs.GET("/categories", logHandler.GetCategories)
			logs.GET("/:category", logHandler.GetLogs)
			logs.GET("/:category/search", logHandler.SearchLogs)
			logs.GET("/:category/export", logHandler.ExportLogs)
			logs.GET("/:category/stream", logHandler.StreamLogs)
		}
	}

	// Embedded widget
	staticFS := http.FS(web.GetStaticFS())
	router.StaticFS("/static", staticFS)
	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", staticFS)
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
