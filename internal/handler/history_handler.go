package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pomodoro/solanum/internal/errors"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/service"
)

type HistoryHandler struct {
	timerService     *service.TimerService
	analyticsService *service.AnalyticsService
	defaultLimit     int
	logger           *slog.Logger
}

func NewHistoryHandler(
	timerService *service.TimerService,
	analyticsService *service.AnalyticsService,
	defaultLimit int,
	logger *slog.Logger,
) *HistoryHandler {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{
		timerService:     timerService,
		analyticsService: analyticsService,
		defaultLimit:     defaultLimit,
		logger:           logger,
	}
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	query := service.HistoryQuery{Limit: h.defaultLimit}

	if raw := c.Query("type"); raw != "" {
		sessionType, ok := model.ParseSessionType(raw)
		if !ok {
			writeError(c, apperrors.BadRequest("invalid_session_type", "type must be one of focus, short_break, long_break"))
			return
		}
		query.Type = sessionType
	}

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(c, apperrors.BadRequest("invalid_limit", "limit must be a non-negative integer"))
			return
		}
		query.Limit = parsed
	}

	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(c, apperrors.BadRequest("invalid_days", "days must be a positive integer"))
			return
		}
		query.Days = parsed
	}

	sessions := h.analyticsService.History(query)
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.timerService.ClearHistory(c.Request.Context()); err != nil {
		h.logger.Error("history not cleared", "error", err)
		writeError(c, apperrors.Storage("failed to clear history", nil))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) GetStats(c *gin.Context) {
	period, ok := service.ParseTimeRange(c.Query("period"))
	if !ok {
		writeError(c, apperrors.BadRequest("invalid_period", "period must be one of week, month, all"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": h.analyticsService.Summary(period)})
}
