package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type CounterHandler struct {
	counterService service.CounterService
	logger         *zap.Logger
}

func NewCounterHandler(counterService service.CounterService, logger *zap.Logger) *CounterHandler {
	return &CounterHandler{counterService: counterService, logger: logger}
}

func (h *CounterHandler) All(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	snapshot, err := h.counterService.All(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list counters failed", zap.Error(err))
		response.InternalError(c, "failed to load counters")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

type updateCounterRequest struct {
	Type      string `json:"type" binding:"required"`
	Operation string `json:"operation"`
	Value     *int   `json:"value"`
}

func (h *CounterHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Operation == "" && req.Value == nil {
		response.BadRequest(c, "operation or value is required")
		return
	}

	value := 0
	if req.Value != nil {
		value = *req.Value
	}

	newValue, err := h.counterService.Apply(c.Request.Context(), userID, req.Type, req.Operation, value)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCounter) {
			response.BadRequest(c, "unknown counter operation")
			return
		}
		h.logger.Error("update counter failed", zap.Error(err))
		response.InternalError(c, "failed to update counter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": req.Type, "value": newValue})
}

func (h *CounterHandler) Reset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.counterService.ResetAll(c.Request.Context(), userID); err != nil {
		h.logger.Error("reset counters failed", zap.Error(err))
		response.InternalError(c, "failed to reset counters")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reset"})
}
