package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Transaction Types
// ===============================

type TxnType string

const (
	TxnPurchase   TxnType = "purchase"
	TxnSale       TxnType = "sale"
	TxnAdjustment TxnType = "adjustment"
	TxnWaste      TxnType = "waste"
	TxnReturn     TxnType = "return"
	TxnTransfer   TxnType = "transfer"
)

func ParseTxnType(s string) (TxnType, error) {
	switch t := TxnType(s); t {
	case TxnPurchase, TxnSale, TxnAdjustment, TxnWaste, TxnReturn, TxnTransfer:
		return t, nil
	}
	return "", httperr.ErrBusiness("invalid_transaction_type")
}

// ===============================
// Ledger Math
// ===============================

// InsufficientStockError is returned when a delta would drive stock below zero.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient_stock: product %s has %d, requested %d",
		e.ProductID, e.Available, e.Requested,
	)
}

// Apply returns before+delta, refusing any result below zero.
func Apply(productID uuid.UUID, before, delta int) (int, error) {
	after := before + delta
	if after < 0 {
		return before, &InsufficientStockError{
			ProductID: productID,
			Available: before,
			Requested: -delta,
		}
	}
	return after, nil
}

// CrossedLowStock is true only on the adjustment that moves stock from above the
// threshold to at or below it.
func CrossedLowStock(before, after, threshold int) bool {
	return before > threshold && after <= threshold
}

func ValidateDelta(delta int) error {
	if delta == 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}
	return nil
}
