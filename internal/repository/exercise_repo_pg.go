package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifehub/internal/model"
)

type pgExerciseRepository struct {
	db *gorm.DB
}

func NewPGExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &pgExerciseRepository{db: db}
}

func (r *pgExerciseRepository) List(ctx context.Context, userID uuid.UUID) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *pgExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *pgExerciseRepository) Update(ctx context.Context, exercise *model.Exercise) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Exercise{}).
		Where("id = ? AND user_id = ?", exercise.ID, exercise.UserID).
		Updates(map[string]interface{}{
			"name":      exercise.Name,
			"type":      exercise.Type,
			"duration":  exercise.Duration,
			"intensity": exercise.Intensity,
		})
	return res.RowsAffected, res.Error
}

func (r *pgExerciseRepository) SetCompleted(ctx context.Context, id, userID uuid.UUID, completed bool) (*model.Exercise, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Exercise{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", completed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var exercise model.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *pgExerciseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Exercise{})
	return res.RowsAffected, res.Error
}

func (r *pgExerciseRepository) ListTypes(ctx context.Context, userID uuid.UUID) ([]model.ExerciseType, error) {
	var types []model.ExerciseType
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *pgExerciseRepository) CreateType(ctx context.Context, exerciseType *model.ExerciseType) error {
	return r.db.WithContext(ctx).Create(exerciseType).Error
}

func (r *pgExerciseRepository) DeleteType(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExerciseType{})
	return res.RowsAffected, res.Error
}

func (r *pgExerciseRepository) GetReminder(ctx context.Context, userID uuid.UUID) (*model.ReminderSetting, error) {
	var setting model.ReminderSetting
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *pgExerciseRepository) UpsertReminder(ctx context.Context, setting *model.ReminderSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "time", "updated_at"}),
		}).
		Create(setting).Error
}
