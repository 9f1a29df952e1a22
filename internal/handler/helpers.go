package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lifehub/internal/handler/middleware"
	jwtpkg "lifehub/pkg/jwt"
	"lifehub/pkg/response"
)

// currentUserID extracts the authenticated user's ID from the claims the
// auth middleware stored. A false return means the response was already
// written.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.ContextKeyUserClaims)
	if !exists {
		response.Unauthorized(c, "not authenticated")
		return uuid.Nil, false
	}
	claims, ok := raw.(*jwtpkg.Claims)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return uuid.Nil, false
	}
	userID, err := claims.UserID()
	if err != nil {
		response.Unauthorized(c, "invalid token subject")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a path parameter as a UUID, writing a 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
