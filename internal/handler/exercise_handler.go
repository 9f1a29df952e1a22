package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          *zap.Logger
}

func NewExerciseHandler(exerciseService service.ExerciseService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, logger: logger}
}

func (h *ExerciseHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, err := h.exerciseService.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list exercises failed", zap.Error(err))
		response.InternalError(c, "failed to load exercises")
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

type exerciseRequest struct {
	Name      string `json:"name" binding:"required,max=128"`
	Type      string `json:"type" binding:"required,max=64"`
	Duration  int    `json:"duration" binding:"min=0"`
	Intensity string `json:"intensity"`
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), userID, service.ExerciseInput{
		Name:      req.Name,
		Type:      req.Type,
		Duration:  req.Duration,
		Intensity: req.Intensity,
	})
	if err != nil {
		h.logger.Error("create exercise failed", zap.Error(err))
		response.InternalError(c, "failed to create exercise")
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), userID, id, service.ExerciseInput{
		Name:      req.Name,
		Type:      req.Type,
		Duration:  req.Duration,
		Intensity: req.Intensity,
	})
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			response.NotFound(c, "exercise not found")
			return
		}
		h.logger.Error("update exercise failed", zap.Error(err))
		response.InternalError(c, "failed to update exercise")
		return
	}

	c.JSON(http.StatusOK, exercise)
}

type completedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *ExerciseHandler) SetCompleted(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req completedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exercise, err := h.exerciseService.SetCompleted(c.Request.Context(), userID, id, *req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			response.NotFound(c, "exercise not found")
			return
		}
		h.logger.Error("update exercise status failed", zap.Error(err))
		response.InternalError(c, "failed to update exercise")
		return
	}

	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			response.NotFound(c, "exercise not found")
			return
		}
		h.logger.Error("delete exercise failed", zap.Error(err))
		response.InternalError(c, "failed to delete exercise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *ExerciseHandler) ListTypes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	types, err := h.exerciseService.ListTypes(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list exercise types failed", zap.Error(err))
		response.InternalError(c, "failed to load exercise types")
		return
	}

	c.JSON(http.StatusOK, gin.H{"types": types})
}

type addTypeRequest struct {
	Type string `json:"type" binding:"required,max=64"`
}

func (h *ExerciseHandler) AddType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req addTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.exerciseService.AddType(c.Request.Context(), userID, req.Type)
	if err != nil {
		if errors.Is(err, service.ErrExerciseTypeExists) {
			response.Conflict(c, "exercise type already exists")
			return
		}
		h.logger.Error("create exercise type failed", zap.Error(err))
		response.InternalError(c, "failed to create exercise type")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"type": created})
}

func (h *ExerciseHandler) DeleteType(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteType(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrExerciseTypeNotFound) {
			response.NotFound(c, "exercise type not found")
			return
		}
		h.logger.Error("delete exercise type failed", zap.Error(err))
		response.InternalError(c, "failed to delete exercise type")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *ExerciseHandler) Reminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminder, err := h.exerciseService.Reminder(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("load reminder failed", zap.Error(err))
		response.InternalError(c, "failed to load reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": reminder.Enabled, "time": reminder.Time})
}

type reminderRequest struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time" binding:"required,len=5"`
}

func (h *ExerciseHandler) SaveReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	reminder, err := h.exerciseService.SaveReminder(c.Request.Context(), userID, service.ReminderInput{
		Enabled: req.Enabled,
		Time:    req.Time,
	})
	if err != nil {
		h.logger.Error("save reminder failed", zap.Error(err))
		response.InternalError(c, "failed to save reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": reminder.Enabled, "time": reminder.Time})
}
