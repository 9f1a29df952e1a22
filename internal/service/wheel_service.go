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

// Fallback scheme shown before a user saves anything.
var (
	defaultWheelOptions = model.StringArray{"Grand Prize", "Second Prize", "Third Prize", "Consolation", "Try Again", "Thanks for Playing"}
	defaultWheelTheme   = "green"
)

// WheelSettings is the owner-resolved settings list.
type WheelSettings struct {
	Settings   []model.WheelSetting `json:"settings"`
	IsShared   bool                 `json:"isShared"`
	DataUserID uuid.UUID            `json:"dataUserId"`
}

// WheelScheme is a single scheme plus its sharing context. A zero ID
// means the default scheme was returned.
type WheelScheme struct {
	ID         uuid.UUID         `json:"id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Options    model.StringArray `json:"options"`
	Theme      string            `json:"theme"`
	IsShared   bool              `json:"isShared"`
	DataUserID uuid.UUID         `json:"dataUserId"`
}

// SaveSchemeInput carries an optional ID: present means update, absent
// means create.
type SaveSchemeInput struct {
	ID      *uuid.UUID
	Name    string
	Options []string
	Theme   string
}

type WheelService interface {
	ListSettings(ctx context.Context, requester uuid.UUID) (*WheelSettings, error)
	GetSetting(ctx context.Context, requester, id uuid.UUID) (*WheelScheme, error)
	SaveSetting(ctx context.Context, requester uuid.UUID, input SaveSchemeInput) (*model.WheelSetting, error)
	DeleteSetting(ctx context.Context, requester, id uuid.UUID) error

	ListHistory(ctx context.Context, requester uuid.UUID) ([]model.WheelHistory, error)
	AddHistory(ctx context.Context, requester uuid.UUID, result string) error
}

type wheelService struct {
	wheelRepo repository.WheelRepository
	userRepo  repository.UserRepository
}

func NewWheelService(wheelRepo repository.WheelRepository, userRepo repository.UserRepository) WheelService {
	return &wheelService{wheelRepo: wheelRepo, userRepo: userRepo}
}

func (s *wheelService) ListSettings(ctx context.Context, requester uuid.UUID) (*WheelSettings, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return nil, err
	}
	settings, err := s.wheelRepo.ListSettings(ctx, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("list wheel settings: %w", err)
	}
	return &WheelSettings{
		Settings:   settings,
		IsShared:   owner.Shared,
		DataUserID: owner.UserID,
	}, nil
}

func (s *wheelService) GetSetting(ctx context.Context, requester, id uuid.UUID) (*WheelScheme, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return nil, err
	}
	setting, err := s.wheelRepo.GetSetting(ctx, id, owner.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Clients always get something to spin.
			return &WheelScheme{
				Options:    defaultWheelOptions,
				Theme:      defaultWheelTheme,
				IsShared:   false,
				DataUserID: owner.UserID,
			}, nil
		}
		return nil, fmt.Errorf("get wheel setting: %w", err)
	}
	return &WheelScheme{
		ID:         setting.ID,
		Name:       setting.Name,
		Options:    setting.Options,
		Theme:      setting.Theme,
		IsShared:   owner.Shared,
		DataUserID: owner.UserID,
	}, nil
}

func (s *wheelService) SaveSetting(ctx context.Context, requester uuid.UUID, input SaveSchemeInput) (*model.WheelSetting, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return nil, err
	}

	setting := &model.WheelSetting{
		UserID:  owner.UserID,
		Name:    input.Name,
		Options: model.StringArray(input.Options),
		Theme:   input.Theme,
	}

	if input.ID != nil {
		setting.ID = *input.ID
		rows, err := s.wheelRepo.UpdateSetting(ctx, setting)
		if err != nil {
			return nil, fmt.Errorf("update wheel setting: %w", err)
		}
		if rows == 0 {
			return nil, ErrSchemeNotFound
		}
		stored, err := s.wheelRepo.GetSetting(ctx, setting.ID, owner.UserID)
		if err != nil {
			return nil, fmt.Errorf("reload wheel setting: %w", err)
		}
		return stored, nil
	}

	if err := s.wheelRepo.CreateSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("create wheel setting: %w", err)
	}
	return setting, nil
}

func (s *wheelService) DeleteSetting(ctx context.Context, requester, id uuid.UUID) error {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return err
	}
	rows, err := s.wheelRepo.DeleteSetting(ctx, id, owner.UserID)
	if err != nil {
		return fmt.Errorf("delete wheel setting: %w", err)
	}
	if rows == 0 {
		return ErrSchemeNotFound
	}
	return nil
}

// History is per requester: spins are personal even when the scheme is
// shared.

func (s *wheelService) ListHistory(ctx context.Context, requester uuid.UUID) ([]model.WheelHistory, error) {
	history, err := s.wheelRepo.ListHistory(ctx, requester)
	if err != nil {
		return nil, fmt.Errorf("list wheel history: %w", err)
	}
	return history, nil
}

func (s *wheelService) AddHistory(ctx context.Context, requester uuid.UUID, result string) error {
	entry := &model.WheelHistory{UserID: requester, Result: result}
	if err := s.wheelRepo.CreateHistory(ctx, entry); err != nil {
		return fmt.Errorf("save wheel history: %w", err)
	}
	return nil
}

var _ WheelService = (*wheelService)(nil)
