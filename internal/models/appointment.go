package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`

	ClientID uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Client   *Client   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	StaffID *uuid.UUID `gorm:"type:uuid;index" json:"staff_id"`
	Staff   *Staff     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	// [StartTime, EndTime)
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"index;not null" json:"end_time"`

	Status string `gorm:"size:20;index;default:'pending'" json:"status"`

	CancellationReason string     `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	CanceledBy         *uuid.UUID `gorm:"type:uuid" json:"canceled_by,omitempty"`

	ActualStartTime *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime   *time.Time `json:"actual_end_time,omitempty"`

	DepositPaid   bool                `gorm:"default:false" json:"deposit_paid"`
	DepositAmount decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"deposit_amount"`
	TotalPrice    decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"total_price"`

	IsRecurring         bool           `gorm:"index;default:false" json:"is_recurring"`
	RecurringPattern    datatypes.JSON `json:"recurring_pattern,omitempty"`
	ParentAppointmentID *uuid.UUID     `gorm:"type:uuid" json:"parent_appointment_id,omitempty"`

	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
