package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// transition loads the appointment locked, applies act and persists it together with
// the event emit returns (nil for none).
func transition(
	ctx context.Context,
	repo domain.Repository,
	salonID uuid.UUID,
	appointmentID uuid.UUID,
	act func(ap *models.Appointment) error,
	emit func(ap *models.Appointment) *notification.Event,
) (*models.Appointment, error) {

	var out *models.Appointment
	err := repo.WithinTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, salonID, appointmentID)
		if err != nil {
			return err
		}

		if err := act(ap); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if emit != nil {
			if ev := emit(ap); ev != nil {
				if err := tx.EnqueueEvent(ctx, *ev); err != nil {
					return err
				}
			}
		}

		out = ap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
