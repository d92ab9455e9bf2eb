package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index" json:"salon_id"`

	SKU     *string `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Barcode *string `gorm:"size:100;uniqueIndex" json:"barcode,omitempty"`

	Name        string              `gorm:"size:255;not null" json:"name"`
	Description string              `gorm:"type:text" json:"description,omitempty"`
	Category    string              `gorm:"size:50" json:"category,omitempty"`
	Price       decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost"`

	// Written only through the stock ledger.
	QuantityInStock   int `gorm:"not null;check:quantity_in_stock >= 0" json:"quantity_in_stock"`
	LowStockThreshold int `gorm:"not null" json:"low_stock_threshold"`
	ReorderPoint      int `gorm:"not null" json:"reorder_point"`
	ReorderQuantity   int `gorm:"not null" json:"reorder_quantity"`

	IsActive   bool `gorm:"not null" json:"is_active"`
	IsSellable bool `gorm:"not null" json:"is_sellable"`
	IsRetail   bool `gorm:"not null" json:"is_retail"`

	ImageURL string `gorm:"size:500" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
