package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Product --------
	GetProduct(
		ctx context.Context,
		salonID uuid.UUID,
		productID uuid.UUID,
	) (*models.Product, error)

	// GetProductForUpdate locks the product row until the surrounding transaction ends.
	GetProductForUpdate(
		ctx context.Context,
		salonID uuid.UUID,
		productID uuid.UUID,
	) (*models.Product, error)

	CreateProduct(
		ctx context.Context,
		p *models.Product,
	) error

	ListProducts(
		ctx context.Context,
		salonID uuid.UUID,
		activeOnly bool,
	) ([]models.Product, error)

	// ListLowStock returns active products at or below their threshold,
	// or at or below override when it is not nil.
	ListLowStock(
		ctx context.Context,
		salonID uuid.UUID,
		override *int,
	) ([]models.Product, error)

	SetStock(
		ctx context.Context,
		productID uuid.UUID,
		quantity int,
	) error

	SetImageURL(
		ctx context.Context,
		salonID uuid.UUID,
		productID uuid.UUID,
		url string,
	) error

	// -------- Ledger --------
	AppendTransaction(
		ctx context.Context,
		txn *models.InventoryTransaction,
	) error

	ListTransactions(
		ctx context.Context,
		salonID uuid.UUID,
		productID uuid.UUID,
		limit int,
	) ([]models.InventoryTransaction, error)

	// -------- Events --------
	EnqueueEvent(
		ctx context.Context,
		ev notification.Event,
	) error

	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
