package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pomodoro/solanum/internal/handler"
	"pomodoro/solanum/internal/middleware"
)

func New(
	timerHandler *handler.TimerHandler,
	settingsHandler *handler.SettingsHandler,
	historyHandler *handler.HistoryHandler,
	corsOrigins []string,
	logger *slog.Logger,
) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestLogger(logger), gin.Recovery(), middleware.CORS(corsOrigins))
	engine.NoRoute(handler.NoRoute)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	timer := api.Group("/timer")
	timer.GET("/state", timerHandler.GetState)
	timer.POST("/start", timerHandler.Start)
	timer.POST("/pause", timerHandler.Pause)
	timer.POST("/skip", timerHandler.Skip)
	timer.POST("/reset", timerHandler.Reset)
	timer.PUT("/project", timerHandler.SetProject)

	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSettings)

	api.GET("/history", historyHandler.GetHistory)
	api.DELETE("/history", historyHandler.ClearHistory)
	api.GET("/stats", historyHandler.GetStats)

	return engine
}
