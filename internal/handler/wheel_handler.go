package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type WheelHandler struct {
	wheelService service.WheelService
	logger       *zap.Logger
}

func NewWheelHandler(wheelService service.WheelService, logger *zap.Logger) *WheelHandler {
	return &WheelHandler{wheelService: wheelService, logger: logger}
}

func (h *WheelHandler) ListSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := h.wheelService.ListSettings(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list wheel settings failed", zap.Error(err))
		response.InternalError(c, "failed to load wheel settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

type saveWheelRequest struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" binding:"required,max=64"`
	Options []string   `json:"options" binding:"required,min=2"`
	Theme   string     `json:"theme"`
}

func (h *WheelHandler) SaveSetting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req saveWheelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	setting, err := h.wheelService.SaveSetting(c.Request.Context(), userID, service.SaveSchemeInput{
		ID:      req.ID,
		Name:    req.Name,
		Options: req.Options,
		Theme:   req.Theme,
	})
	if err != nil {
		if errors.Is(err, service.ErrSchemeNotFound) {
			response.NotFound(c, "wheel scheme not found")
			return
		}
		h.logger.Error("save wheel setting failed", zap.Error(err))
		response.InternalError(c, "failed to save wheel setting")
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	c.JSON(status, setting)
}

func (h *WheelHandler) GetSetting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	scheme, err := h.wheelService.GetSetting(c.Request.Context(), userID, id)
	if err != nil {
		h.logger.Error("get wheel setting failed", zap.Error(err))
		response.InternalError(c, "failed to load wheel setting")
		return
	}

	c.JSON(http.StatusOK, scheme)
}

func (h *WheelHandler) DeleteSetting(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.wheelService.DeleteSetting(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrSchemeNotFound) {
			response.NotFound(c, "wheel scheme not found")
			return
		}
		h.logger.Error("delete wheel setting failed", zap.Error(err))
		response.InternalError(c, "failed to delete wheel setting")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *WheelHandler) ListHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := h.wheelService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list wheel history failed", zap.Error(err))
		response.InternalError(c, "failed to load wheel history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

type addWheelHistoryRequest struct {
	Result string `json:"result" binding:"required"`
}

func (h *WheelHandler) AddHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req addWheelHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.wheelService.AddHistory(c.Request.Context(), userID, req.Result); err != nil {
		h.logger.Error("save wheel history failed", zap.Error(err))
		response.InternalError(c, "failed to save wheel history")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "recorded"})
}
