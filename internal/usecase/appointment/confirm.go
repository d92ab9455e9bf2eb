package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ConfirmAppointment struct {
	repo domain.Repository
}

func NewConfirmAppointment(
	repo domain.Repository,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo: repo,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {
	return transition(ctx, uc.repo, salonID, appointmentID, domain.Confirm, nil)
}
