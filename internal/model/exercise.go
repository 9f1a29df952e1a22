package model

import (
	"time"

	"github.com/google/uuid"
)

type Exercise struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Type      string    `gorm:"type:varchar(64);not null" json:"type"`
	Duration  int       `gorm:"not null" json:"duration"`
	Intensity string    `gorm:"type:varchar(32);not null" json:"intensity"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exercise) TableName() string { return "exercises" }

// ExerciseType is a user-defined category, unique per user.
type ExerciseType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exercise_types_user_type" json:"user_id"`
	Type      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_exercise_types_user_type" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (ExerciseType) TableName() string { return "exercise_types" }

// ReminderSetting is a per-user singleton.
type ReminderSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReminderSetting) TableName() string { return "reminder_settings" }
