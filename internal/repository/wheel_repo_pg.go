package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
)

type pgWheelRepository struct {
	db *gorm.DB
}

func NewPGWheelRepository(db *gorm.DB) WheelRepository {
	return &pgWheelRepository{db: db}
}

func (r *pgWheelRepository) ListSettings(ctx context.Context, userID uuid.UUID) ([]model.WheelSetting, error) {
	var settings []model.WheelSetting
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *pgWheelRepository) GetSetting(ctx context.Context, id, userID uuid.UUID) (*model.WheelSetting, error) {
	var setting model.WheelSetting
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *pgWheelRepository) CreateSetting(ctx context.Context, setting *model.WheelSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *pgWheelRepository) UpdateSetting(ctx context.Context, setting *model.WheelSetting) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.WheelSetting{}).
		Where("id = ? AND user_id = ?", setting.ID, setting.UserID).
		Updates(map[string]interface{}{
			"name":    setting.Name,
			"options": setting.Options,
			"theme":   setting.Theme,
		})
	return res.RowsAffected, res.Error
}

func (r *pgWheelRepository) DeleteSetting(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WheelSetting{})
	return res.RowsAffected, res.Error
}

func (r *pgWheelRepository) ListHistory(ctx context.Context, userID uuid.UUID) ([]model.WheelHistory, error) {
	var history []model.WheelHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *pgWheelRepository) CreateHistory(ctx context.Context, entry *model.WheelHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
