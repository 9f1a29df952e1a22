package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type InviteHandler struct {
	inviteService service.InviteService
	logger        *zap.Logger
}

func NewInviteHandler(inviteService service.InviteService, logger *zap.Logger) *InviteHandler {
	return &InviteHandler{inviteService: inviteService, logger: logger}
}

func (h *InviteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	code, err := h.inviteService.CreateOrGetCode(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("create invite code failed", zap.Error(err))
		response.InternalError(c, "failed to create invite code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code.Code})
}

func (h *InviteHandler) MyCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	code, err := h.inviteService.MyCode(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			response.NotFound(c, "no invite code yet")
			return
		}
		h.logger.Error("load invite code failed", zap.Error(err))
		response.InternalError(c, "failed to load invite code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code.Code})
}

type bindRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *InviteHandler) Bind(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req bindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	err := h.inviteService.Bind(c.Request.Context(), userID, req.Code)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "bound"})
	case errors.Is(err, service.ErrCodeNotFound):
		response.NotFound(c, "invite code not found")
	case errors.Is(err, service.ErrSelfInvite):
		response.BadRequest(c, "cannot bind your own invite code")
	case errors.Is(err, service.ErrAlreadyBound):
		response.BadRequest(c, "already bound to an inviter")
	default:
		h.logger.Error("bind invite code failed", zap.Error(err))
		response.InternalError(c, "failed to bind invite code")
	}
}

func (h *InviteHandler) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.inviteService.Status(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("load invite status failed", zap.Error(err))
		response.InternalError(c, "failed to load invite status")
		return
	}

	c.JSON(http.StatusOK, status)
}
