package model

import (
	"time"

	"github.com/google/uuid"
)

type ListRole string

const (
	ListRoleOwner   ListRole = "owner"
	ListRoleInvited ListRole = "invited"
)

// SharedList access is governed by explicit membership rows, not by the
// invite graph that personal resources use.
type SharedList struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(128);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SharedList) TableName() string { return "shared_lists" }

type ListMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_members_list_user" json:"list_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_members_list_user" json:"user_id"`
	Role      ListRole  `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListMember) TableName() string { return "list_members" }

type ListItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	Name        string    `gorm:"type:varchar(256);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ListItem) TableName() string { return "list_items" }
