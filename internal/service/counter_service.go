package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lifehub/internal/repository"
)

const (
	CounterOpIncrement = "increment"
	CounterOpDecrement = "decrement"
	CounterOpReset     = "reset"
)

// CounterSnapshot is the full counter state for a requester, including
// the sharing redirection that produced it.
type CounterSnapshot struct {
	Counters   map[string]int `json:"counters"`
	IsShared   bool           `json:"isShared"`
	DataUserID uuid.UUID      `json:"dataUserId"`
}

type CounterService interface {
	All(ctx context.Context, requester uuid.UUID) (*CounterSnapshot, error)

	// Apply runs a named operation, or sets an absolute value when the
	// operation is empty. Decrement floors at zero; operations on a
	// missing counter first initialize it.
	Apply(ctx context.Context, requester uuid.UUID, counterType, operation string, value int) (int, error)

	ResetAll(ctx context.Context, requester uuid.UUID) error
}

type counterService struct {
	counterRepo  repository.CounterRepository
	userRepo     repository.UserRepository
	defaultTypes []string
}

func NewCounterService(counterRepo repository.CounterRepository, userRepo repository.UserRepository, defaultTypes []string) CounterService {
	return &counterService{
		counterRepo:  counterRepo,
		userRepo:     userRepo,
		defaultTypes: defaultTypes,
	}
}

func (s *counterService) All(ctx context.Context, requester uuid.UUID) (*CounterSnapshot, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return nil, err
	}
	counters, err := s.counterRepo.ListByUser(ctx, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}

	values := make(map[string]int, len(counters)+len(s.defaultTypes))
	for _, counterType := range s.defaultTypes {
		values[counterType] = 0
	}
	for _, counter := range counters {
		values[counter.Type] = counter.Value
	}

	return &CounterSnapshot{
		Counters:   values,
		IsShared:   owner.Shared,
		DataUserID: owner.UserID,
	}, nil
}

func (s *counterService) Apply(ctx context.Context, requester uuid.UUID, counterType, operation string, value int) (int, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return 0, err
	}

	switch operation {
	case CounterOpIncrement:
		return s.counterRepo.ApplyDelta(ctx, owner.UserID, counterType, 1, 1)
	case CounterOpDecrement:
		return s.counterRepo.ApplyDelta(ctx, owner.UserID, counterType, 0, -1)
	case CounterOpReset:
		return s.counterRepo.SetValue(ctx, owner.UserID, counterType, 0)
	case "":
		if value < 0 {
			value = 0
		}
		return s.counterRepo.SetValue(ctx, owner.UserID, counterType, value)
	default:
		return 0, ErrInvalidCounter
	}
}

func (s *counterService) ResetAll(ctx context.Context, requester uuid.UUID) error {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return err
	}
	if err := s.counterRepo.ResetAll(ctx, owner.UserID); err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}
	return nil
}

var _ CounterService = (*counterService)(nil)
