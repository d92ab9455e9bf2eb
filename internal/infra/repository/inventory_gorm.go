package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type InventoryGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// --------------------------------------------------
// Product
// --------------------------------------------------

func (r *InventoryGormRepository) GetProduct(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
) (*models.Product, error) {

	var p models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", productID, salonID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "product")
	}
	return &p, nil
}

func (r *InventoryGormRepository) GetProductForUpdate(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
) (*models.Product, error) {

	var p models.Product
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND salon_id = ?", productID, salonID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "product")
	}
	return &p, nil
}

func (r *InventoryGormRepository) CreateProduct(
	ctx context.Context,
	p *models.Product,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *InventoryGormRepository) ListProducts(
	ctx context.Context,
	salonID uuid.UUID,
	activeOnly bool,
) ([]models.Product, error) {

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var out []models.Product
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InventoryGormRepository) ListLowStock(
	ctx context.Context,
	salonID uuid.UUID,
	override *int,
) ([]models.Product, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND is_active = ?", salonID, true)

	if override != nil {
		q = q.Where("quantity_in_stock <= ?", *override)
	} else {
		q = q.Where("quantity_in_stock <= low_stock_threshold")
	}

	var out []models.Product
	if err := q.Order("quantity_in_stock ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InventoryGormRepository) SetStock(
	ctx context.Context,
	productID uuid.UUID,
	quantity int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("quantity_in_stock", quantity).Error
}

func (r *InventoryGormRepository) SetImageURL(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
	url string,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND salon_id = ?", productID, salonID).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "product")
	}
	return nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *InventoryGormRepository) AppendTransaction(
	ctx context.Context,
	txn *models.InventoryTransaction,
) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *InventoryGormRepository) ListTransactions(
	ctx context.Context,
	salonID uuid.UUID,
	productID uuid.UUID,
	limit int,
) ([]models.InventoryTransaction, error) {

	var out []models.InventoryTransaction
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND product_id = ?", salonID, productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Events / Tx
// --------------------------------------------------

func (r *InventoryGormRepository) EnqueueEvent(
	ctx context.Context,
	ev notification.Event,
) error {
	return enqueueEvent(ctx, r.db, ev)
}

func (r *InventoryGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InventoryGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*InventoryGormRepository)(nil)
