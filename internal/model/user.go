package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password string    `gorm:"type:varchar(128);not null" json:"-"`
	Name     string    `gorm:"type:varchar(128);not null" json:"name"`

	// InvitedBy is set at most once, via invite-code binding, and never
	// points at the user itself. Once set it redirects every read/write
	// of the user's shared resources to the inviter's rows.
	InvitedBy *uuid.UUID `gorm:"type:uuid;index" json:"invited_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
