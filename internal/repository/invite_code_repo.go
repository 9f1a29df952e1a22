package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

// ErrAlreadyBound is returned by Bind when the user's invited_by is
// already set. The conditional update makes concurrent binds race-safe:
// exactly one wins, the rest see this error.
var ErrAlreadyBound = errors.New("invited_by already set")

type InviteCodeRepository interface {
	Create(ctx context.Context, code *model.InviteCode) error
	GetByCode(ctx context.Context, code string) (*model.InviteCode, error)
	GetByCreator(ctx context.Context, userID uuid.UUID) (*model.InviteCode, error)

	// Bind sets the user's invited_by to the code's creator and stamps
	// used_at/used_by, all inside one transaction.
	Bind(ctx context.Context, userID uuid.UUID, code *model.InviteCode) error
}
