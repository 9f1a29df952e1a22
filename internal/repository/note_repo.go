package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type NoteRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Note, error)
	Get(ctx context.Context, userID uuid.UUID, date string) (*model.Note, error)
	Upsert(ctx context.Context, userID uuid.UUID, date, content string) error
	// Delete reports how many rows were removed so callers can
	// distinguish a real delete from a no-op.
	Delete(ctx context.Context, userID uuid.UUID, date string) (int64, error)
}
