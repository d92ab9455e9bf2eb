package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalon(
		ctx context.Context,
		salonID uuid.UUID,
	) (*models.Salon, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		salonID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	// FindOverlapping returns blocking appointments of staffID intersecting [start, end),
	// client preloaded, ordered by start time. Inside WithinTx the rows are locked.
	FindOverlapping(
		ctx context.Context,
		salonID uuid.UUID,
		staffID uuid.UUID,
		start time.Time,
		end time.Time,
		excludeID *uuid.UUID,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		salonID uuid.UUID,
		staffID *uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Events --------
	EnqueueEvent(
		ctx context.Context,
		ev notification.Event,
	) error

	// WithinTx runs fn against a repository bound to one database transaction.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
