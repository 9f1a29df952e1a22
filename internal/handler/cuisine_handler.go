package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type CuisineHandler struct {
	cuisineService service.CuisineService
	logger         *zap.Logger
}

func NewCuisineHandler(cuisineService service.CuisineService, logger *zap.Logger) *CuisineHandler {
	return &CuisineHandler{cuisineService: cuisineService, logger: logger}
}

func (h *CuisineHandler) Categories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	categories, err := h.cuisineService.Categories(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list cuisine categories failed", zap.Error(err))
		response.InternalError(c, "failed to load categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type saveCategoriesRequest struct {
	Categories map[string][]string `json:"categories" binding:"required"`
}

func (h *CuisineHandler) SaveCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req saveCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.cuisineService.ReplaceCategories(c.Request.Context(), userID, req.Categories); err != nil {
		h.logger.Error("save cuisine categories failed", zap.Error(err))
		response.InternalError(c, "failed to save categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saved"})
}

func (h *CuisineHandler) Random(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dish, err := h.cuisineService.Random(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoDishes) {
			response.NotFound(c, "no dishes configured")
			return
		}
		h.logger.Error("pick random dish failed", zap.Error(err))
		response.InternalError(c, "failed to pick a dish")
		return
	}

	c.JSON(http.StatusOK, gin.H{"dish": dish})
}

func (h *CuisineHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := h.cuisineService.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list cuisine history failed", zap.Error(err))
		response.InternalError(c, "failed to load history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

type addCuisineHistoryRequest struct {
	Time    string `json:"time" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *CuisineHandler) AddHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req addCuisineHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.cuisineService.AddHistory(c.Request.Context(), userID, req.Time, req.Content); err != nil {
		h.logger.Error("save cuisine history failed", zap.Error(err))
		response.InternalError(c, "failed to save history")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "recorded"})
}

func (h *CuisineHandler) ClearHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.cuisineService.ClearHistory(c.Request.Context(), userID); err != nil {
		h.logger.Error("clear cuisine history failed", zap.Error(err))
		response.InternalError(c, "failed to clear history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}
