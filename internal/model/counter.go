package model

import (
	"time"

	"github.com/google/uuid"
)

// Counter is keyed by (owner, type). Value never goes below zero.
type Counter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_counters_user_type" json:"user_id"`
	Type      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_counters_user_type" json:"type"`
	Value     int       `gorm:"not null;default:0" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Counter) TableName() string { return "counters" }
