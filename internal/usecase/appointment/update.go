package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput changes only the fields that are set.
type UpdateAppointmentInput struct {
	SalonID       uuid.UUID
	AppointmentID uuid.UUID

	StartTime *time.Time
	EndTime   *time.Time
	StaffID   *uuid.UUID
	Notes     *string
}

func (in UpdateAppointmentInput) apply(ap *models.Appointment) {
	if in.StartTime != nil {
		ap.StartTime = in.StartTime.UTC()
	}
	if in.EndTime != nil {
		ap.EndTime = in.EndTime.UTC()
	}
	if in.StaffID != nil {
		staff := *in.StaffID
		ap.StaffID = &staff
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
}

func (in UpdateAppointmentInput) reschedules() bool {
	return in.StartTime != nil || in.EndTime != nil || in.StaffID != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo   domain.Repository
	locker lock.Locker
}

func NewUpdateAppointment(
	repo domain.Repository,
	locker lock.Locker,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		locker: locker,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Target staff, read before locking
	// --------------------------------------------------
	current, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	target := *current
	in.apply(&target)

	if in.reschedules() {
		if err := domain.CanReschedule(current); err != nil {
			return nil, err
		}
		if err := domain.ValidateRange(target.StartTime, target.EndTime); err != nil {
			return nil, err
		}
	}

	release, err := lockStaff(ctx, uc.locker, in.SalonID, target.StaffID)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Check + write, one transaction
	// --------------------------------------------------
	var out *models.Appointment
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.SalonID, in.AppointmentID)
		if err != nil {
			return err
		}

		if in.reschedules() {
			if err := domain.CanReschedule(ap); err != nil {
				return err
			}
		}

		in.apply(ap)

		if in.reschedules() {
			if err := domain.ValidateRange(ap.StartTime, ap.EndTime); err != nil {
				return err
			}
			if ap.StaffID != nil {
				if err := assertNoConflict(ctx, tx, availabilityFor(ap, &ap.ID)); err != nil {
					return err
				}
			}
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		out = ap
		return nil
	})
	if err != nil {
		if target.StaffID != nil {
			return nil, translateExclusion(ctx, uc.repo, availabilityFor(&target, &target.ID), err)
		}
		return nil, err
	}

	return out, nil
}
