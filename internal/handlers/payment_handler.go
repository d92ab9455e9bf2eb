package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucpayment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/payment"
)

type PaymentHandler struct {
	register *ucpayment.RegisterPayment
	confirm  *ucpayment.ConfirmPayment
	log      *zap.Logger
}

func NewPaymentHandler(
	register *ucpayment.RegisterPayment,
	confirm *ucpayment.ConfirmPayment,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		register: register,
		confirm:  confirm,
		log:      log,
	}
}

// --------- Requests ---------

type RegisterPaymentRequest struct {
	AppointmentID uuid.UUID       `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"required"`
}

type ConfirmPaymentRequest struct {
	ProviderPaymentID string `json:"provider_payment_id" binding:"required"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Register(c *gin.Context) {
	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}
	if req.AppointmentID == uuid.Nil {
		httperr.BadRequest(c, "appointment_required", "appointment_id is required.")
		return
	}

	p, err := h.register.Execute(c.Request.Context(), ucpayment.RegisterPaymentInput{
		SalonID:       middleware.SalonID(c),
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(201, p)
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	p, err := h.confirm.Execute(c.Request.Context(), ucpayment.ConfirmPaymentInput{
		SalonID:           middleware.SalonID(c),
		PaymentID:         id,
		ProviderPaymentID: strings.TrimSpace(req.ProviderPaymentID),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, p)
}
