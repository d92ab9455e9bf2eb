package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo domain.Repository
}

func NewCompleteAppointment(
	repo domain.Repository,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo: repo,
	}
}

func (uc *CompleteAppointment) Execute(
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
			return domain.Complete(ap, timezone.NowIn(salon.Timezone))
		},
		nil,
	)
}
