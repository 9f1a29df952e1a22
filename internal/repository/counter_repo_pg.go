package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
)

type pgCounterRepository struct {
	db *gorm.DB
}

func NewPGCounterRepository(db *gorm.DB) CounterRepository {
	return &pgCounterRepository{db: db}
}

func (r *pgCounterRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Counter, error) {
	var counters []model.Counter
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&counters).Error; err != nil {
		return nil, err
	}
	return counters, nil
}

// Both mutations are single INSERT ... ON CONFLICT statements, so each
// request is atomic without explicit row locking.

func (r *pgCounterRepository) ApplyDelta(ctx context.Context, userID uuid.UUID, counterType string, init, delta int) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (user_id, type, value)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, type)
		 DO UPDATE SET value = GREATEST(counters.value + ?, 0), updated_at = NOW()
		 RETURNING value`,
		userID, counterType, init, delta,
	).Scan(&value).Error
	return value, err
}

func (r *pgCounterRepository) SetValue(ctx context.Context, userID uuid.UUID, counterType string, value int) (int, error) {
	var stored int
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (user_id, type, value)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, type)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		 RETURNING value`,
		userID, counterType, value,
	).Scan(&stored).Error
	return stored, err
}

func (r *pgCounterRepository) ResetAll(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Counter{}).
		Where("user_id = ?", userID).
		Update("value", 0).Error
}
