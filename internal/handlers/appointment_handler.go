package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucappointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create            *ucappointment.CreateAppointment
	Update            *ucappointment.UpdateAppointment
	CheckAvailability *ucappointment.CheckAvailability
	Get               *ucappointment.GetAppointment
	ListByDate        *ucappointment.ListAppointmentsByDate
	ListByMonth       *ucappointment.ListAppointmentsByMonth

	Confirm  *ucappointment.ConfirmAppointment
	CheckIn  *ucappointment.CheckInAppointment
	Start    *ucappointment.StartAppointment
	Complete *ucappointment.CompleteAppointment
	Cancel   *ucappointment.CancelAppointment
	NoShow   *ucappointment.MarkNoShow
}

type AppointmentHandler struct {
	uc  AppointmentUseCases
	log *zap.Logger
}

func NewAppointmentHandler(uc AppointmentUseCases, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uuid.UUID  `json:"client_id"`
	StaffID   *uuid.UUID `json:"staff_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`

	DepositAmount decimal.NullDecimal `json:"deposit_amount"`
	TotalPrice    decimal.NullDecimal `json:"total_price"`

	IsRecurring         bool           `json:"is_recurring"`
	RecurringPattern    datatypes.JSON `json:"recurring_pattern"`
	ParentAppointmentID *uuid.UUID     `json:"parent_appointment_id"`

	Notes string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}
	if req.ClientID == uuid.Nil {
		httperr.BadRequest(c, "client_required", "client_id is required.")
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		SalonID:             middleware.SalonID(c),
		ClientID:            req.ClientID,
		StaffID:             req.StaffID,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		DepositAmount:       req.DepositAmount,
		TotalPrice:          req.TotalPrice,
		IsRecurring:         req.IsRecurring,
		RecurringPattern:    req.RecurringPattern,
		ParentAppointmentID: req.ParentAppointmentID,
		Notes:               req.Notes,
		CreatedBy:           middleware.UserID(c),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(201, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), ucappointment.UpdateAppointmentInput{
		SalonID:       middleware.SalonID(c),
		AppointmentID: id,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		StaffID:       req.StaffID,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

// CheckAvailability answers GET ?staff_id=&start=&end=&exclude_id= with the
// blocking appointments that overlap the range.
func (h *AppointmentHandler) CheckAvailability(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff_id.")
		return
	}

	start, err := parseInstant(c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "start must be RFC3339.")
		return
	}
	end, err := parseInstant(c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "end must be RFC3339.")
		return
	}

	exclude, ok := optionalUUID(c, "exclude_id")
	if !ok {
		return
	}

	res, err := h.uc.CheckAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:              middleware.SalonID(c),
		StaffID:              staffID,
		StartTime:            start,
		EndTime:              end,
		ExcludeAppointmentID: exclude,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.uc.Get.Execute(c.Request.Context(), middleware.SalonID(c), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	staffID, ok := optionalUUID(c, "staff_id")
	if !ok {
		return
	}

	list, err := h.uc.ListByDate.Execute(c.Request.Context(), middleware.SalonID(c), staffID, date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	staffID, ok := optionalUUID(c, "staff_id")
	if !ok {
		return
	}

	list, err := h.uc.ListByMonth.Execute(c.Request.Context(), middleware.SalonID(c), staffID, year, month)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// LIFECYCLE
// ======================================================

type lifecycleFunc func(ctx context.Context, salonID, appointmentID uuid.UUID) (*models.Appointment, error)

func (h *AppointmentHandler) runTransition(c *gin.Context, fn lifecycleFunc) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := fn(c.Request.Context(), middleware.SalonID(c), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.runTransition(c, h.uc.Confirm.Execute)
}

func (h *AppointmentHandler) CheckIn(c *gin.Context) {
	h.runTransition(c, h.uc.CheckIn.Execute)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.runTransition(c, h.uc.Start.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.runTransition(c, h.uc.Complete.Execute)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.runTransition(c, h.uc.NoShow.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// body is optional
	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid payload.")
			return
		}
	}

	ap, err := h.uc.Cancel.Execute(c.Request.Context(), ucappointment.CancelAppointmentInput{
		SalonID:       middleware.SalonID(c),
		AppointmentID: id,
		Reason:        req.Reason,
		CanceledBy:    middleware.UserID(c),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}
