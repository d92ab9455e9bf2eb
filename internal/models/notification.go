package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the in-app copy of a delivered domain event.
type Notification struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID  uuid.UUID  `gorm:"type:uuid;index:idx_notifications_salon_read" json:"salon_id"`
	UserID   *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Type     string     `gorm:"size:50;not null" json:"type"`
	Title    string     `gorm:"size:255;not null" json:"title"`
	Message  string     `gorm:"type:text" json:"message"`
	EntityID *uuid.UUID `gorm:"type:uuid" json:"entity_id,omitempty"`
	IsRead   bool       `gorm:"index:idx_notifications_salon_read;default:false" json:"is_read"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// OutboxEvent is written in the same transaction as the state change that produced it.
type OutboxEvent struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID  uuid.UUID  `gorm:"type:uuid;index" json:"salon_id"`
	Type     string     `gorm:"size:50;not null" json:"type"`
	Title    string     `gorm:"size:255;not null" json:"title"`
	Message  string     `gorm:"type:text" json:"message"`
	EntityID *uuid.UUID `gorm:"type:uuid" json:"entity_id,omitempty"`

	Attempts    int        `gorm:"not null;default:0" json:"attempts"`
	LastError   string     `gorm:"type:text" json:"last_error,omitempty"`
	DeliveredAt *time.Time `gorm:"index" json:"delivered_at,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
