package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// ListDetail is a list with its members and items.
type ListDetail struct {
	model.SharedList
	Members []model.ListMember `json:"members"`
	Items   []model.ListItem   `json:"items"`
}

type ListItemInput struct {
	Name        string
	Description string
	Completed   bool
}

type ListService interface {
	// Shared lists use explicit membership, not the invite graph: every
	// operation checks that the requester is a member first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.SharedList, error)
	Create(ctx context.Context, userID uuid.UUID, name, description string) (*model.SharedList, error)
	Get(ctx context.Context, userID, listID uuid.UUID) (*ListDetail, error)

	AddMember(ctx context.Context, userID, listID uuid.UUID, username string) (*model.ListMember, error)

	Items(ctx context.Context, userID, listID uuid.UUID) ([]model.ListItem, error)
	AddItem(ctx context.Context, userID, listID uuid.UUID, input ListItemInput) (*model.ListItem, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input ListItemInput) (*model.ListItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
}

type listService struct {
	listRepo repository.ListRepository
	userRepo repository.UserRepository
}

func NewListService(listRepo repository.ListRepository, userRepo repository.UserRepository) ListService {
	return &listService{listRepo: listRepo, userRepo: userRepo}
}

func (s *listService) requireMember(ctx context.Context, listID, userID uuid.UUID) (*model.ListMember, error) {
	member, err := s.listRepo.GetMember(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotListMember
		}
		return nil, fmt.Errorf("check list membership: %w", err)
	}
	return member, nil
}

func (s *listService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.SharedList, error) {
	lists, err := s.listRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared lists: %w", err)
	}
	return lists, nil
}

func (s *listService) Create(ctx context.Context, userID uuid.UUID, name, description string) (*model.SharedList, error) {
	list := &model.SharedList{
		Name:        name,
		Description: description,
		OwnerID:     userID,
	}
	if err := s.listRepo.CreateWithOwner(ctx, list); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *listService) Get(ctx context.Context, userID, listID uuid.UUID) (*ListDetail, error) {
	if _, err := s.requireMember(ctx, listID, userID); err != nil {
		return nil, err
	}

	list, err := s.listRepo.Get(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("get list: %w", err)
	}
	members, err := s.listRepo.ListMembers(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	items, err := s.listRepo.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &ListDetail{SharedList: *list, Members: members, Items: items}, nil
}

func (s *listService) AddMember(ctx context.Context, userID, listID uuid.UUID, username string) (*model.ListMember, error) {
	member, err := s.requireMember(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role != model.ListRoleOwner {
		return nil, ErrNotListOwner
	}

	invitee, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	newMember := &model.ListMember{
		ListID: listID,
		UserID: invitee.ID,
		Role:   model.ListRoleInvited,
	}
	if err := s.listRepo.AddMember(ctx, newMember); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("add list member: %w", err)
	}
	return newMember, nil
}

func (s *listService) Items(ctx context.Context, userID, listID uuid.UUID) ([]model.ListItem, error) {
	if _, err := s.requireMember(ctx, listID, userID); err != nil {
		return nil, err
	}
	items, err := s.listRepo.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *listService) AddItem(ctx context.Context, userID, listID uuid.UUID, input ListItemInput) (*model.ListItem, error) {
	if _, err := s.requireMember(ctx, listID, userID); err != nil {
		return nil, err
	}
	item := &model.ListItem{
		ListID:      listID,
		Name:        input.Name,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedBy:   userID,
	}
	if err := s.listRepo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create list item: %w", err)
	}
	return item, nil
}

// Item routes address items directly, so membership is checked against
// the list the item belongs to.

func (s *listService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input ListItemInput) (*model.ListItem, error) {
	item, err := s.listRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get list item: %w", err)
	}
	if _, err := s.requireMember(ctx, item.ListID, userID); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Completed = input.Completed
	if err := s.listRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("update list item: %w", err)
	}
	return item, nil
}

func (s *listService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.listRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("get list item: %w", err)
	}
	if _, err := s.requireMember(ctx, item.ListID, userID); err != nil {
		return err
	}
	if err := s.listRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete list item: %w", err)
	}
	return nil
}

var _ ListService = (*listService)(nil)
