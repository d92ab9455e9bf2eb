package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AdjustStockInput struct {
	SalonID   uuid.UUID
	ProductID uuid.UUID
	Delta     int
	Type      domain.TxnType

	CostPerUnit   decimal.NullDecimal
	ReferenceType string
	ReferenceID   *uuid.UUID
	Notes         string
	PerformedBy   *uuid.UUID
}

type AdjustStockResult struct {
	Product     *models.Product              `json:"product"`
	Transaction *models.InventoryTransaction `json:"transaction"`
	LowStock    bool                         `json:"low_stock_alert"`
}

// ======================================================
// USE CASE
// ======================================================

type AdjustStock struct {
	repo  domain.Repository
	waker notification.Waker
}

func NewAdjustStock(
	repo domain.Repository,
	waker notification.Waker,
) *AdjustStock {
	return &AdjustStock{
		repo:  repo,
		waker: waker,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute is not idempotent: every successful call appends one ledger row.
func (uc *AdjustStock) Execute(
	ctx context.Context,
	in AdjustStockInput,
) (*AdjustStockResult, error) {

	if err := domain.ValidateDelta(in.Delta); err != nil {
		return nil, err
	}
	if _, err := domain.ParseTxnType(string(in.Type)); err != nil {
		return nil, err
	}

	var res AdjustStockResult
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		// --------------------------------------------------
		// Locked read
		// --------------------------------------------------
		p, err := tx.GetProductForUpdate(ctx, in.SalonID, in.ProductID)
		if err != nil {
			return err
		}

		before := p.QuantityInStock
		after, err := domain.Apply(p.ID, before, in.Delta)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// Product + ledger row
		// --------------------------------------------------
		if err := tx.SetStock(ctx, p.ID, after); err != nil {
			return err
		}
		p.QuantityInStock = after

		txn := &models.InventoryTransaction{
			SalonID:        in.SalonID,
			ProductID:      p.ID,
			Type:           string(in.Type),
			Quantity:       in.Delta,
			QuantityBefore: before,
			QuantityAfter:  after,
			CostPerUnit:    in.CostPerUnit,
			TotalCost:      totalCost(in.CostPerUnit, in.Delta),
			ReferenceType:  in.ReferenceType,
			ReferenceID:    in.ReferenceID,
			Notes:          in.Notes,
			PerformedBy:    in.PerformedBy,
		}
		if err := tx.AppendTransaction(ctx, txn); err != nil {
			return err
		}

		// --------------------------------------------------
		// Threshold crossing
		// --------------------------------------------------
		if domain.CrossedLowStock(before, after, p.LowStockThreshold) {
			if err := tx.EnqueueEvent(ctx, notification.LowStock(p.SalonID, p.ID, p.Name, after)); err != nil {
				return err
			}
			res.LowStock = true
		}

		res.Product = p
		res.Transaction = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.LowStock {
		uc.waker.Wake()
	}
	return &res, nil
}

func totalCost(perUnit decimal.NullDecimal, delta int) decimal.NullDecimal {
	if !perUnit.Valid {
		return decimal.NullDecimal{}
	}
	qty := delta
	if qty < 0 {
		qty = -qty
	}
	return decimal.NewNullDecimal(perUnit.Decimal.Mul(decimal.NewFromInt(int64(qty))))
}
