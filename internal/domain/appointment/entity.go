package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func apply(ap *models.Appointment, ev Event) error {
	next, err := Next(Status(ap.Status), ev)
	if err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}

func Confirm(ap *models.Appointment) error {
	return apply(ap, EventConfirm)
}

func CheckIn(ap *models.Appointment, now time.Time) error {
	if err := apply(ap, EventCheckIn); err != nil {
		return err
	}
	ap.ActualStartTime = &now
	return nil
}

func Start(ap *models.Appointment) error {
	return apply(ap, EventStart)
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := apply(ap, EventComplete); err != nil {
		return err
	}
	ap.ActualEndTime = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time, reason string, by *uuid.UUID) error {
	if err := apply(ap, EventCancel); err != nil {
		return err
	}
	ap.CanceledAt = &now
	ap.CancellationReason = reason
	ap.CanceledBy = by
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	return apply(ap, EventNoShow)
}

// CanReschedule guards edits of time or staff.
func CanReschedule(ap *models.Appointment) error {
	_, err := Next(Status(ap.Status), EventReschedule)
	return err
}
