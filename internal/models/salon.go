package models

import (
	"time"

	"github.com/google/uuid"
)

// Salon is the tenant. Every other row carries its SalonID.
type Salon struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Timezone    string    `gorm:"size:64" json:"timezone"`
	AutoConfirm bool      `gorm:"default:false" json:"auto_confirm"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
