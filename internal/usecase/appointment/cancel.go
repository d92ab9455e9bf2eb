package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelAppointmentInput struct {
	SalonID       uuid.UUID
	AppointmentID uuid.UUID
	Reason        string
	CanceledBy    *uuid.UUID
}

type CancelAppointment struct {
	repo  domain.Repository
	waker notification.Waker
}

func NewCancelAppointment(
	repo domain.Repository,
	waker notification.Waker,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		waker: waker,
	}
}

// Execute moves the appointment to canceled; the row is kept.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalon(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := transition(ctx, uc.repo, in.SalonID, in.AppointmentID,
		func(ap *models.Appointment) error {
			return domain.Cancel(ap, timezone.NowIn(salon.Timezone), in.Reason, in.CanceledBy)
		},
		func(ap *models.Appointment) *notification.Event {
			ev := notification.AppointmentCancelled(ap.SalonID, ap.ID, in.Reason)
			return &ev
		},
	)
	if err != nil {
		return nil, err
	}

	uc.waker.Wake()
	return ap, nil
}
