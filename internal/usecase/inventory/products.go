package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateProductInput struct {
	SalonID uuid.UUID

	SKU         string
	Barcode     string
	Name        string
	Description string
	Category    string

	Price decimal.Decimal
	Cost  decimal.NullDecimal

	LowStockThreshold *int
	ReorderPoint      *int
	ReorderQuantity   *int

	IsSellable bool
	IsRetail   bool
}

type CreateProduct struct {
	repo domain.Repository
}

func NewCreateProduct(
	repo domain.Repository,
) *CreateProduct {
	return &CreateProduct{
		repo: repo,
	}
}

// Execute creates the product with zero stock; opening stock goes through the ledger.
func (uc *CreateProduct) Execute(
	ctx context.Context,
	in CreateProductInput,
) (*models.Product, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}
	if in.Price.IsNegative() {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	p := &models.Product{
		SalonID:           in.SalonID,
		SKU:               optional(in.SKU),
		Barcode:           optional(in.Barcode),
		Name:              name,
		Description:       in.Description,
		Category:          in.Category,
		Price:             in.Price,
		Cost:              in.Cost,
		LowStockThreshold: orDefault(in.LowStockThreshold, 10),
		ReorderPoint:      orDefault(in.ReorderPoint, 5),
		ReorderQuantity:   orDefault(in.ReorderQuantity, 20),
		IsActive:          true,
		IsSellable:        in.IsSellable,
		IsRetail:          in.IsRetail,
	}
	if p.LowStockThreshold < 0 || p.ReorderPoint < 0 || p.ReorderQuantity < 0 {
		return nil, httperr.ErrBusiness("invalid_threshold")
	}

	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("sku_or_barcode_taken")
		}
		return nil, err
	}
	return p, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// ======================================================
// READ
// ======================================================

type GetProduct struct {
	repo domain.Repository
}

func NewGetProduct(
	repo domain.Repository,
) *GetProduct {
	return &GetProduct{
		repo: repo,
	}
}

func (uc *GetProduct) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
) (*models.Product, error) {
	return uc.repo.GetProduct(ctx, salonID, productID)
}

type ListProducts struct {
	repo domain.Repository
}

func NewListProducts(
	repo domain.Repository,
) *ListProducts {
	return &ListProducts{
		repo: repo,
	}
}

func (uc *ListProducts) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	activeOnly bool,
) ([]models.Product, error) {
	return uc.repo.ListProducts(ctx, salonID, activeOnly)
}

type ListLowStock struct {
	repo domain.Repository
}

func NewListLowStock(
	repo domain.Repository,
) *ListLowStock {
	return &ListLowStock{
		repo: repo,
	}
}

// Execute uses each product's own threshold unless override is set.
func (uc *ListLowStock) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	override *int,
) ([]models.Product, error) {
	if override != nil && *override < 0 {
		return nil, httperr.ErrBusiness("invalid_threshold")
	}
	return uc.repo.ListLowStock(ctx, salonID, override)
}

// ======================================================
// LEDGER HISTORY
// ======================================================

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type ProductHistory struct {
	repo domain.Repository
}

func NewProductHistory(
	repo domain.Repository,
) *ProductHistory {
	return &ProductHistory{
		repo: repo,
	}
}

// Execute returns the product's ledger, newest first.
func (uc *ProductHistory) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
	limit int,
) ([]models.InventoryTransaction, error) {

	if _, err := uc.repo.GetProduct(ctx, salonID, productID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return uc.repo.ListTransactions(ctx, salonID, productID, limit)
}
