package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
)

type pgCuisineRepository struct {
	db *gorm.DB
}

func NewPGCuisineRepository(db *gorm.DB) CuisineRepository {
	return &pgCuisineRepository{db: db}
}

func (r *pgCuisineRepository) ListCategories(ctx context.Context, userID uuid.UUID) ([]model.CuisineCategory, error) {
	var categories []model.CuisineCategory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("dishes.name ASC")
		}).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *pgCuisineRepository) ReplaceCategories(ctx context.Context, userID uuid.UUID, categories map[string][]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("category_id IN (?)",
				tx.Model(&model.CuisineCategory{}).Select("id").Where("user_id = ?", userID),
			).
			Delete(&model.Dish{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.CuisineCategory{}).Error; err != nil {
			return err
		}

		for name, dishes := range categories {
			category := model.CuisineCategory{UserID: userID, Name: name}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			for _, dishName := range dishes {
				dish := model.Dish{CategoryID: category.ID, Name: dishName}
				if err := tx.Create(&dish).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *pgCuisineRepository) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]model.CuisineHistory, error) {
	var history []model.CuisineHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *pgCuisineRepository) CreateHistory(ctx context.Context, entry *model.CuisineHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *pgCuisineRepository) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CuisineHistory{}).Error
}
