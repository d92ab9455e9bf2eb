package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StartAppointment struct {
	repo domain.Repository
}

func NewStartAppointment(
	repo domain.Repository,
) *StartAppointment {
	return &StartAppointment{
		repo: repo,
	}
}

func (uc *StartAppointment) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {
	return transition(ctx, uc.repo, salonID, appointmentID, domain.Start, nil)
}
