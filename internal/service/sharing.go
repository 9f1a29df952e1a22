package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/repository"
)

// DataOwner is whose rows a request actually touches after invite-graph
// redirection. Shared is true when the requester was redirected to their
// inviter.
type DataOwner struct {
	UserID uuid.UUID
	Shared bool
}

// ResolveDataOwner reads invited_by fresh on every call. A bind can land
// mid-session, so the result must never be cached across requests.
func ResolveDataOwner(ctx context.Context, users repository.UserRepository, requester uuid.UUID) (DataOwner, error) {
	user, err := users.GetByID(ctx, requester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DataOwner{}, ErrUserNotFound
		}
		return DataOwner{}, fmt.Errorf("resolve data owner: %w", err)
	}
	if user.InvitedBy != nil {
		return DataOwner{UserID: *user.InvitedBy, Shared: true}, nil
	}
	return DataOwner{UserID: requester, Shared: false}, nil
}
