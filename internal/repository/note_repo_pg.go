package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifehub/internal/model"
)

type pgNoteRepository struct {
	db *gorm.DB
}

func NewPGNoteRepository(db *gorm.DB) NoteRepository {
	return &pgNoteRepository{db: db}
}

func (r *pgNoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *pgNoteRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *pgNoteRepository) Upsert(ctx context.Context, userID uuid.UUID, date, content string) error {
	note := model.Note{UserID: userID, Date: date, Content: content}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&note).Error
}

func (r *pgNoteRepository) Delete(ctx context.Context, userID uuid.UUID, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&model.Note{})
	return res.RowsAffected, res.Error
}
