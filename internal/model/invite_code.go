package model

import (
	"time"

	"github.com/google/uuid"
)

// InviteCode is one code per creator (unique index on created_by).
// UsedAt/UsedBy record the most recent bind for display purposes only;
// a code may be bound by any number of invitees.
type InviteCode struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"created_by"`
	Code      string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"code"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *uuid.UUID `gorm:"type:uuid" json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (InviteCode) TableName() string { return "invite_codes" }
