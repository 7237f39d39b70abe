package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pomodoro/solanum/internal/errors"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/service"
)

// SaveSettingsFunc persists settings before they are applied.
type SaveSettingsFunc func(model.Settings) error

type SettingsHandler struct {
	timerService *service.TimerService
	save         SaveSettingsFunc
	logger       *slog.Logger
}

func NewSettingsHandler(timerService *service.TimerService, save SaveSettingsFunc, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{timerService: timerService, save: save, logger: logger}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.timerService.Settings()})
}

// UpdateSettings merges the body over the current settings, so omitted
// fields keep their values. Out of range numbers are clamped.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	settings := h.timerService.Settings()
	if err := c.ShouldBindJSON(&settings); err != nil {
		writeError(c, apperrors.InvalidJSON())
		return
	}
	settings = settings.Normalized()

	if h.save != nil {
		if err := h.save(settings); err != nil {
			h.logger.Error("settings not saved", "error", err)
			writeError(c, apperrors.Storage("failed to save settings", nil))
			return
		}
	}

	h.timerService.ApplySettings(settings)
	c.JSON(http.StatusOK, gin.H{
		"settings": h.timerService.Settings(),
		"state":    h.timerService.State(),
	})
}
