package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"lifehub/internal/model"
	"lifehub/internal/repository"
)

const cuisineHistoryLimit = 10

type CuisineService interface {
	// Categories returns category name -> dish names (dishes name asc).
	Categories(ctx context.Context, userID uuid.UUID) (map[string][]string, error)

	// ReplaceCategories swaps the user's entire cuisine catalog in one
	// transaction.
	ReplaceCategories(ctx context.Context, userID uuid.UUID, categories map[string][]string) error

	// Random picks a uniformly random dish across all categories.
	Random(ctx context.Context, userID uuid.UUID) (string, error)

	History(ctx context.Context, userID uuid.UUID) ([]model.CuisineHistory, error)
	AddHistory(ctx context.Context, userID uuid.UUID, time, content string) error
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}

type cuisineService struct {
	cuisineRepo repository.CuisineRepository
}

func NewCuisineService(cuisineRepo repository.CuisineRepository) CuisineService {
	return &cuisineService{cuisineRepo: cuisineRepo}
}

func (s *cuisineService) Categories(ctx context.Context, userID uuid.UUID) (map[string][]string, error) {
	categories, err := s.cuisineRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cuisine categories: %w", err)
	}
	out := make(map[string][]string, len(categories))
	for _, category := range categories {
		names := make([]string, 0, len(category.Dishes))
		for _, dish := range category.Dishes {
			names = append(names, dish.Name)
		}
		out[category.Name] = names
	}
	return out, nil
}

func (s *cuisineService) ReplaceCategories(ctx context.Context, userID uuid.UUID, categories map[string][]string) error {
	if err := s.cuisineRepo.ReplaceCategories(ctx, userID, categories); err != nil {
		return fmt.Errorf("replace cuisine categories: %w", err)
	}
	return nil
}

func (s *cuisineService) Random(ctx context.Context, userID uuid.UUID) (string, error) {
	categories, err := s.cuisineRepo.ListCategories(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("list cuisine categories: %w", err)
	}
	var dishes []string
	for _, category := range categories {
		for _, dish := range category.Dishes {
			dishes = append(dishes, dish.Name)
		}
	}
	if len(dishes) == 0 {
		return "", ErrNoDishes
	}
	return dishes[rand.Intn(len(dishes))], nil
}

func (s *cuisineService) History(ctx context.Context, userID uuid.UUID) ([]model.CuisineHistory, error) {
	history, err := s.cuisineRepo.ListHistory(ctx, userID, cuisineHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list cuisine history: %w", err)
	}
	return history, nil
}

func (s *cuisineService) AddHistory(ctx context.Context, userID uuid.UUID, time, content string) error {
	entry := &model.CuisineHistory{UserID: userID, Time: time, Content: content}
	if err := s.cuisineRepo.CreateHistory(ctx, entry); err != nil {
		return fmt.Errorf("save cuisine history: %w", err)
	}
	return nil
}

func (s *cuisineService) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	if err := s.cuisineRepo.ClearHistory(ctx, userID); err != nil {
		return fmt.Errorf("clear cuisine history: %w", err)
	}
	return nil
}

var _ CuisineService = (*cuisineService)(nil)
