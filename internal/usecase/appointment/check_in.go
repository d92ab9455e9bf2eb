package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CheckInAppointment struct {
	repo domain.Repository
}

func NewCheckInAppointment(
	repo domain.Repository,
) *CheckInAppointment {
	return &CheckInAppointment{
		repo: repo,
	}
}

func (uc *CheckInAppointment) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return transition(ctx, uc.repo, salonID, appointmentID,
		func(ap *models.Appointment) error {
			return domain.CheckIn(ap, timezone.NowIn(salon.Timezone))
		},
		nil,
	)
}
