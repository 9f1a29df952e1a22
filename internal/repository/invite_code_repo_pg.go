package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
)

type pgInviteCodeRepository struct {
	db *gorm.DB
}

func NewPGInviteCodeRepository(db *gorm.DB) InviteCodeRepository {
	return &pgInviteCodeRepository{db: db}
}

func (r *pgInviteCodeRepository) Create(ctx context.Context, code *model.InviteCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *pgInviteCodeRepository) GetByCode(ctx context.Context, code string) (*model.InviteCode, error) {
	var inviteCode model.InviteCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&inviteCode).Error; err != nil {
		return nil, err
	}
	return &inviteCode, nil
}

func (r *pgInviteCodeRepository) GetByCreator(ctx context.Context, userID uuid.UUID) (*model.InviteCode, error) {
	var inviteCode model.InviteCode
	if err := r.db.WithContext(ctx).Where("created_by = ?", userID).First(&inviteCode).Error; err != nil {
		return nil, err
	}
	return &inviteCode, nil
}

func (r *pgInviteCodeRepository) Bind(ctx context.Context, userID uuid.UUID, code *model.InviteCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarding on invited_by IS NULL makes binding one-shot even
		// under concurrent requests for the same user.
		res := tx.Model(&model.User{}).
			Where("id = ? AND invited_by IS NULL", userID).
			Update("invited_by", code.CreatedBy)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyBound
		}

		now := time.Now()
		return tx.Model(&model.InviteCode{}).
			Where("id = ?", code.ID).
			Updates(map[string]interface{}{
				"used_at": now,
				"used_by": userID,
			}).Error
	})
}
