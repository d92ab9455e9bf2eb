package models

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Role   string `gorm:"size:20;default:'stylist'" json:"role"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
