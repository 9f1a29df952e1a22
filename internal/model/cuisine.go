package model

import (
	"time"

	"github.com/google/uuid"
)

type CuisineCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Dishes []Dish `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"dishes,omitempty"`
}

func (CuisineCategory) TableName() string { return "cuisine_categories" }

type Dish struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string    `gorm:"type:varchar(128);not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Dish) TableName() string { return "dishes" }

// CuisineHistory records picked dishes; clients show the last few only.
type CuisineHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Time      string    `gorm:"type:varchar(32);not null" json:"time"`
	Content   string    `gorm:"type:varchar(256);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (CuisineHistory) TableName() string { return "cuisine_history" }
