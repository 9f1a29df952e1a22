package repository

import (
	"context"

	"github.com/google/uuid"

	"lifehub/internal/model"
)

type ListRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.SharedList, error)
	// CreateWithOwner inserts the list and its owner membership row in
	// one transaction.
	CreateWithOwner(ctx context.Context, list *model.SharedList) error
	Get(ctx context.Context, listID uuid.UUID) (*model.SharedList, error)

	GetMember(ctx context.Context, listID, userID uuid.UUID) (*model.ListMember, error)
	ListMembers(ctx context.Context, listID uuid.UUID) ([]model.ListMember, error)
	AddMember(ctx context.Context, member *model.ListMember) error

	ListItems(ctx context.Context, listID uuid.UUID) ([]model.ListItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*model.ListItem, error)
	CreateItem(ctx context.Context, item *model.ListItem) error
	UpdateItem(ctx context.Context, item *model.ListItem) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
