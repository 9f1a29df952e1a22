package model

import (
	"time"

	"github.com/google/uuid"
)

// WheelSetting is a named prize-wheel scheme. UserID is the effective
// owner, so invited users see and edit their inviter's schemes.
type WheelSetting struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string      `gorm:"type:varchar(128);not null" json:"name"`
	Options   StringArray `gorm:"type:text[];not null" json:"options"`
	Theme     string      `gorm:"type:varchar(32);not null" json:"theme"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (WheelSetting) TableName() string { return "wheel_settings" }

// WheelHistory records spin results per requester (not owner-redirected).
type WheelHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Result    string    `gorm:"type:varchar(256);not null" json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

func (WheelHistory) TableName() string { return "wheel_history" }
