package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
)

type pgListRepository struct {
	db *gorm.DB
}

func NewPGListRepository(db *gorm.DB) ListRepository {
	return &pgListRepository{db: db}
}

func (r *pgListRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.SharedList, error) {
	var lists []model.SharedList
	if err := r.db.WithContext(ctx).
		Joins("INNER JOIN list_members ON list_members.list_id = shared_lists.id").
		Where("list_members.user_id = ?", userID).
		Order("shared_lists.created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *pgListRepository) CreateWithOwner(ctx context.Context, list *model.SharedList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		member := model.ListMember{
			ListID: list.ID,
			UserID: list.OwnerID,
			Role:   model.ListRoleOwner,
		}
		return tx.Create(&member).Error
	})
}

func (r *pgListRepository) Get(ctx context.Context, listID uuid.UUID) (*model.SharedList, error) {
	var list model.SharedList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", listID).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *pgListRepository) GetMember(ctx context.Context, listID, userID uuid.UUID) (*model.ListMember, error) {
	var member model.ListMember
	if err := r.db.WithContext(ctx).
		Where("list_id = ? AND user_id = ?", listID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *pgListRepository) ListMembers(ctx context.Context, listID uuid.UUID) ([]model.ListMember, error) {
	var members []model.ListMember
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *pgListRepository) AddMember(ctx context.Context, member *model.ListMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *pgListRepository) ListItems(ctx context.Context, listID uuid.UUID) ([]model.ListItem, error) {
	var items []model.ListItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pgListRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*model.ListItem, error) {
	var item model.ListItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pgListRepository) CreateItem(ctx context.Context, item *model.ListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pgListRepository) UpdateItem(ctx context.Context, item *model.ListItem) error {
	return r.db.WithContext(ctx).
		Model(&model.ListItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
			"completed":   item.Completed,
		}).Error
}

func (r *pgListRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ListItem{}, "id = ?", itemID).Error
}
