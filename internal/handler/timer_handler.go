package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pomodoro/solanum/internal/errors"
	"pomodoro/solanum/internal/service"
)

type TimerHandler struct {
	timerService *service.TimerService
}

type projectRequest struct {
	Name *string `json:"name"`
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{timerService: timerService}
}

func (h *TimerHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.timerService.State()})
}

func (h *TimerHandler) Start(c *gin.Context) {
	h.timerService.Start()
	h.GetState(c)
}

func (h *TimerHandler) Pause(c *gin.Context) {
	h.timerService.Pause()
	h.GetState(c)
}

func (h *TimerHandler) Skip(c *gin.Context) {
	h.timerService.Skip()
	h.GetState(c)
}

func (h *TimerHandler) Reset(c *gin.Context) {
	h.timerService.Reset()
	h.GetState(c)
}

func (h *TimerHandler) SetProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.InvalidJSON())
		return
	}
	if req.Name == nil {
		writeError(c, apperrors.BadRequest("invalid_project", "name is required, use an empty string to clear it"))
		return
	}

	h.timerService.SetProject(*req.Name)
	h.GetState(c)
}
