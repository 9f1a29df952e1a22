package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/model"
	"lifehub/internal/repository"
	"lifehub/pkg/crypto"
	jwtpkg "lifehub/pkg/jwt"
)

type AuthService interface {
	Register(ctx context.Context, username, password, name string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwtpkg.Manager
}

func NewAuthService(userRepo repository.UserRepository, jwtManager *jwtpkg.Manager) AuthService {
	return &authService{userRepo: userRepo, jwtManager: jwtManager}
}

func (s *authService) Register(ctx context.Context, username, password, name string) (*model.User, string, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check username: %w", err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username: username,
		Password: hash,
		Name:     name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index catches registrations racing past the
		// pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtManager.Generate(user.ID, user.Username, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	// Unknown username and wrong password fail identically so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if !crypto.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Username, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

var _ AuthService = (*authService)(nil)
