package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type CounterRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Counter, error)

	// ApplyDelta initializes a missing counter to init, otherwise adds
	// delta to the stored value, flooring at zero. Returns the new value.
	ApplyDelta(ctx context.Context, userID uuid.UUID, counterType string, init, delta int) (int, error)

	// SetValue upserts an absolute value and returns it.
	SetValue(ctx context.Context, userID uuid.UUID, counterType string, value int) (int, error)

	ResetAll(ctx context.Context, userID uuid.UUID) error
}
