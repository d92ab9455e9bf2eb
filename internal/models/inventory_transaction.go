package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryTransaction is one immutable ledger row. QuantityAfter = QuantityBefore + Quantity.
type InventoryTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID   uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`

	Type           string `gorm:"size:50;index;not null" json:"type"`
	Quantity       int    `gorm:"not null" json:"quantity"`
	QuantityBefore int    `gorm:"not null" json:"quantity_before"`
	QuantityAfter  int    `gorm:"not null" json:"quantity_after"`

	CostPerUnit decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost_per_unit"`
	TotalCost   decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"total_cost"`

	ReferenceType string     `gorm:"size:50;index" json:"reference_type,omitempty"`
	ReferenceID   *uuid.UUID `gorm:"type:uuid" json:"reference_id,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	PerformedBy   *uuid.UUID `gorm:"type:uuid" json:"performed_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
