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

// Exercise data is personal: the invite graph does not redirect it.

const defaultReminderTime = "09:00"

type ExerciseInput struct {
	Name      string
	Type      string
	Duration  int
	Intensity string
}

type ReminderInput struct {
	Enabled bool
	Time    string
}

type ExerciseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Exercise, error)
	Create(ctx context.Context, userID uuid.UUID, input ExerciseInput) (*model.Exercise, error)
	Update(ctx context.Context, userID, id uuid.UUID, input ExerciseInput) (*model.Exercise, error)
	SetCompleted(ctx context.Context, userID, id uuid.UUID, completed bool) (*model.Exercise, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	ListTypes(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddType(ctx context.Context, userID uuid.UUID, exerciseType string) (string, error)
	DeleteType(ctx context.Context, userID, id uuid.UUID) error

	Reminder(ctx context.Context, userID uuid.UUID) (*ReminderInput, error)
	SaveReminder(ctx context.Context, userID uuid.UUID, input ReminderInput) (*ReminderInput, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) List(ctx context.Context, userID uuid.UUID) ([]model.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *exerciseService) Create(ctx context.Context, userID uuid.UUID, input ExerciseInput) (*model.Exercise, error) {
	exercise := &model.Exercise{
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Duration:  input.Duration,
		Intensity: input.Intensity,
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

func (s *exerciseService) Update(ctx context.Context, userID, id uuid.UUID, input ExerciseInput) (*model.Exercise, error) {
	exercise := &model.Exercise{
		ID:        id,
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Duration:  input.Duration,
		Intensity: input.Intensity,
	}
	rows, err := s.exerciseRepo.Update(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	if rows == 0 {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

func (s *exerciseService) SetCompleted(ctx context.Context, userID, id uuid.UUID, completed bool) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.SetCompleted(ctx, id, userID, completed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("update exercise status: %w", err)
	}
	return exercise, nil
}

func (s *exerciseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.exerciseRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if rows == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (s *exerciseService) ListTypes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	types, err := s.exerciseRepo.ListTypes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Type)
	}
	return out, nil
}

func (s *exerciseService) AddType(ctx context.Context, userID uuid.UUID, exerciseType string) (string, error) {
	record := &model.ExerciseType{UserID: userID, Type: exerciseType}
	if err := s.exerciseRepo.CreateType(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrExerciseTypeExists
		}
		return "", fmt.Errorf("create exercise type: %w", err)
	}
	return record.Type, nil
}

func (s *exerciseService) DeleteType(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := s.exerciseRepo.DeleteType(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete exercise type: %w", err)
	}
	if rows == 0 {
		return ErrExerciseTypeNotFound
	}
	return nil
}

func (s *exerciseService) Reminder(ctx context.Context, userID uuid.UUID) (*ReminderInput, error) {
	setting, err := s.exerciseRepo.GetReminder(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ReminderInput{Enabled: false, Time: defaultReminderTime}, nil
		}
		return nil, fmt.Errorf("get reminder setting: %w", err)
	}
	return &ReminderInput{Enabled: setting.Enabled, Time: setting.Time}, nil
}

func (s *exerciseService) SaveReminder(ctx context.Context, userID uuid.UUID, input ReminderInput) (*ReminderInput, error) {
	setting := &model.ReminderSetting{
		UserID:  userID,
		Enabled: input.Enabled,
		Time:    input.Time,
	}
	if err := s.exerciseRepo.UpsertReminder(ctx, setting); err != nil {
		return nil, fmt.Errorf("save reminder setting: %w", err)
	}
	return &ReminderInput{Enabled: setting.Enabled, Time: setting.Time}, nil
}

var _ ExerciseService = (*exerciseService)(nil)
