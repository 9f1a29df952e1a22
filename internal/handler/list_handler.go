package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/service"
	"lifehub/pkg/response"
)

type ListHandler struct {
	listService service.ListService
	logger      *zap.Logger
}

func NewListHandler(listService service.ListService, logger *zap.Logger) *ListHandler {
	return &ListHandler{listService: listService, logger: logger}
}

func (h *ListHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.listService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list shared lists failed", zap.Error(err))
		response.InternalError(c, "failed to load lists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

type createListRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"max=512"`
}

func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	list, err := h.listService.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		h.logger.Error("create list failed", zap.Error(err))
		response.InternalError(c, "failed to create list")
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *ListHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	detail, err := h.listService.Get(c.Request.Context(), userID, listID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotListMember):
			response.Forbidden(c, "not a member of this list")
		case errors.Is(err, service.ErrListNotFound):
			response.NotFound(c, "list not found")
		default:
			h.logger.Error("get list failed", zap.Error(err))
			response.InternalError(c, "failed to load list")
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

type addMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *ListHandler) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	member, err := h.listService.AddMember(c.Request.Context(), userID, listID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotListMember):
			response.Forbidden(c, "not a member of this list")
		case errors.Is(err, service.ErrNotListOwner):
			response.Forbidden(c, "only the list owner can add members")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrAlreadyMember):
			response.Conflict(c, "user is already a member")
		default:
			h.logger.Error("add list member failed", zap.Error(err))
			response.InternalError(c, "failed to add member")
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *ListHandler) Items(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	items, err := h.listService.Items(c.Request.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, service.ErrNotListMember) {
			response.Forbidden(c, "not a member of this list")
			return
		}
		h.logger.Error("list items failed", zap.Error(err))
		response.InternalError(c, "failed to load items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type listItemRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"max=512"`
	Completed   bool   `json:"completed"`
}

func (h *ListHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req listItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.listService.AddItem(c.Request.Context(), userID, listID, service.ListItemInput{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotListMember) {
			response.Forbidden(c, "not a member of this list")
			return
		}
		h.logger.Error("create list item failed", zap.Error(err))
		response.InternalError(c, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ListHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	var req listItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	item, err := h.listService.UpdateItem(c.Request.Context(), userID, itemID, service.ListItemInput{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, "item not found")
		case errors.Is(err, service.ErrNotListMember):
			response.Forbidden(c, "not a member of this list")
		default:
			h.logger.Error("update list item failed", zap.Error(err))
			response.InternalError(c, "failed to update item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ListHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}

	err := h.listService.DeleteItem(c.Request.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, "item not found")
		case errors.Is(err, service.ErrNotListMember):
			response.Forbidden(c, "not a member of this list")
		default:
			h.logger.Error("delete list item failed", zap.Error(err))
			response.InternalError(c, "failed to delete item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
