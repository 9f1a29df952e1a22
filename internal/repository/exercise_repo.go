package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type ExerciseRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Exercise, error)
	Create(ctx context.Context, exercise *model.Exercise) error
	Update(ctx context.Context, exercise *model.Exercise) (int64, error)
	SetCompleted(ctx context.Context, id, userID uuid.UUID, completed bool) (*model.Exercise, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	ListTypes(ctx context.Context, userID uuid.UUID) ([]model.ExerciseType, error)
	CreateType(ctx context.Context, exerciseType *model.ExerciseType) error
	DeleteType(ctx context.Context, id, userID uuid.UUID) (int64, error)

	GetReminder(ctx context.Context, userID uuid.UUID) (*model.ReminderSetting, error)
	UpsertReminder(ctx context.Context, setting *model.ReminderSetting) error
}
