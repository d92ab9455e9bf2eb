package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MarkNoShow struct {
	repo domain.Repository
}

func NewMarkNoShow(
	repo domain.Repository,
) *MarkNoShow {
	return &MarkNoShow{
		repo: repo,
	}
}

// Execute does not look at the clock; staff decide when a client failed to show.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {
	return transition(ctx, uc.repo, salonID, appointmentID, domain.MarkNoShow, nil)
}
