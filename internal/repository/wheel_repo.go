package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type WheelRepository interface {
	ListSettings(ctx context.Context, userID uuid.UUID) ([]model.WheelSetting, error)
	GetSetting(ctx context.Context, id, userID uuid.UUID) (*model.WheelSetting, error)
	CreateSetting(ctx context.Context, setting *model.WheelSetting) error
	// UpdateSetting scopes by owner; zero rows means the scheme does not
	// exist or belongs to someone else.
	UpdateSetting(ctx context.Context, setting *model.WheelSetting) (int64, error)
	DeleteSetting(ctx context.Context, id, userID uuid.UUID) (int64, error)

	ListHistory(ctx context.Context, userID uuid.UUID) ([]model.WheelHistory, error)
	CreateHistory(ctx context.Context, entry *model.WheelHistory) error
}
