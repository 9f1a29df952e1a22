package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type CuisineRepository interface {
	// ListCategories loads the user's categories with dishes preloaded
	// in name order.
	ListCategories(ctx context.Context, userID uuid.UUID) ([]model.CuisineCategory, error)

	// ReplaceCategories wipes and re-inserts the user's categories and
	// dishes inside one transaction.
	ReplaceCategories(ctx context.Context, userID uuid.UUID, categories map[string][]string) error

	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]model.CuisineHistory, error)
	CreateHistory(ctx context.Context, entry *model.CuisineHistory) error
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}
