package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
)

// business codes that mean "the request clashes with existing state"
var conflictCodes = map[string]bool{
	"payment_already_exists":        true,
	"provider_payment_already_used": true,
	"sku_or_barcode_taken":          true,
}

var unavailableCodes = map[string]bool{
	"image_storage_disabled": true,
	"payments_disabled":      true,
}

// writeError maps core errors onto the JSON error envelope.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var (
		ce  *appointment.ConflictError
		ise *inventory.InsufficientStockError
		nf  httperr.NotFoundError
		be  httperr.BusinessError
	)

	switch {
	case errors.As(err, &ce):
		httperr.Conflict(c, "appointment_conflict", "The staff member is already booked in that range.", gin.H{
			"conflicts": ce.Conflicts,
		})

	case errors.As(err, &ise):
		httperr.WriteDetails(c, http.StatusBadRequest, "insufficient_stock", "Not enough stock for this adjustment.", gin.H{
			"product_id": ise.ProductID,
			"available":  ise.Available,
			"requested":  ise.Requested,
		})

	case errors.As(err, &nf):
		httperr.NotFound(c, nf.Error(), "Not found.")

	case errors.As(err, &be):
		if be.Code == "invalid_transition" {
			log.Warn("rejected status transition",
				zap.String("path", c.FullPath()),
				zap.String("id", c.Param("id")),
			)
		}
		switch {
		case conflictCodes[be.Code]:
			httperr.Conflict(c, be.Code, "Conflicts with existing data.", nil)
		case unavailableCodes[be.Code]:
			httperr.Write(c, http.StatusServiceUnavailable, be.Code, "Feature not configured.")
		default:
			httperr.BadRequest(c, be.Code, "Request rejected.")
		}

	case errors.Is(err, lock.ErrNotAcquired), errors.Is(err, context.DeadlineExceeded):
		httperr.Write(c, http.StatusServiceUnavailable, "staff_busy", "Try again in a moment.")

	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
