package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lists the calendar day of date as seen in the salon's timezone.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uuid.UUID,
	staffID *uuid.UUID,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	salon, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayRange(date, salon.Timezone)

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		salonID,
		staffID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments, timezone.Location(salon.Timezone)), nil
}

func toListDTO(appointments []models.Appointment, loc *time.Location) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:         ap.ID,
			StartTime:  ap.StartTime.In(loc),
			EndTime:    ap.EndTime.In(loc),
			Status:     ap.Status,
			ClientName: "Unknown Client",
			StaffID:    ap.StaffID,
		}
		if ap.Client != nil && ap.Client.Name != "" {
			item.ClientName = ap.Client.Name
		}
		if ap.Staff != nil {
			item.StaffName = ap.Staff.Name
		}
		out = append(out, item)
	}
	return out
}
