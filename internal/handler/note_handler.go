package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type NoteHandler struct {
	noteService service.NoteService
	logger      *zap.Logger
}

func NewNoteHandler(noteService service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{noteService: noteService, logger: logger}
}

func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := h.noteService.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list notes failed", zap.Error(err))
		response.InternalError(c, "failed to list notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (h *NoteHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Param("date")

	content, err := h.noteService.Get(c.Request.Context(), userID, date)
	if err != nil {
		h.logger.Error("get note failed", zap.Error(err))
		response.InternalError(c, "failed to load note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "content": content})
}

type saveNoteRequest struct {
	Date    string `json:"date" binding:"required"`
	Content string `json:"content"`
}

func (h *NoteHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req saveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.noteService.Save(c.Request.Context(), userID, req.Date, req.Content); err != nil {
		h.logger.Error("save note failed", zap.Error(err))
		response.InternalError(c, "failed to save note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saved"})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Param("date")

	if err := h.noteService.Delete(c.Request.Context(), userID, date); err != nil {
		h.logger.Error("delete note failed", zap.Error(err))
		response.InternalError(c, "failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
