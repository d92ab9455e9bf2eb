package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID       uuid.UUID  `gorm:"type:uuid;index" json:"salon_id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`

	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency string          `gorm:"size:3;not null" json:"currency"`
	Status   string          `gorm:"size:20;index;not null" json:"status"`

	ProviderPaymentID *string `gorm:"size:64;uniqueIndex" json:"provider_payment_id,omitempty"`
	PaymentMethod     string  `gorm:"size:50" json:"payment_method,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
