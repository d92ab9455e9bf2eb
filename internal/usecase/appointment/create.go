package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID  uuid.UUID
	ClientID uuid.UUID
	StaffID  *uuid.UUID

	StartTime time.Time
	EndTime   time.Time

	DepositAmount decimal.NullDecimal
	TotalPrice    decimal.NullDecimal

	IsRecurring         bool
	RecurringPattern    datatypes.JSON
	ParentAppointmentID *uuid.UUID

	Notes     string
	CreatedBy *uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	waker  notification.Waker
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	waker notification.Waker,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		waker:  waker,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Range
	// --------------------------------------------------
	if err := domain.ValidateRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalon(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		SalonID:             in.SalonID,
		ClientID:            in.ClientID,
		StaffID:             in.StaffID,
		StartTime:           in.StartTime.UTC(),
		EndTime:             in.EndTime.UTC(),
		Status:              string(domain.InitialStatus(salon.AutoConfirm)),
		DepositAmount:       in.DepositAmount,
		TotalPrice:          in.TotalPrice,
		IsRecurring:         in.IsRecurring,
		RecurringPattern:    in.RecurringPattern,
		ParentAppointmentID: in.ParentAppointmentID,
		Notes:               in.Notes,
		CreatedBy:           in.CreatedBy,
	}

	// --------------------------------------------------
	// Staff lock
	// --------------------------------------------------
	release, err := lockStaff(ctx, uc.locker, in.SalonID, in.StaffID)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Check + write + event, one transaction
	// --------------------------------------------------
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if in.StaffID != nil {
			if err := assertNoConflict(ctx, tx, availabilityFor(ap, nil)); err != nil {
				return err
			}
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		return tx.EnqueueEvent(ctx, notification.AppointmentBooked(ap.SalonID, ap.ID))
	})
	if err != nil {
		if in.StaffID != nil {
			return nil, translateExclusion(ctx, uc.repo, availabilityFor(ap, nil), err)
		}
		return nil, err
	}

	uc.waker.Wake()
	return ap, nil
}

func availabilityFor(ap *models.Appointment, exclude *uuid.UUID) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		SalonID:              ap.SalonID,
		StaffID:              *ap.StaffID,
		StartTime:            ap.StartTime,
		EndTime:              ap.EndTime,
		ExcludeAppointmentID: exclude,
	}
}
