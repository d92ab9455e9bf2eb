package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
)

// lockStaff serializes writes for one staff member. Unassigned appointments need no lock.
func lockStaff(
	ctx context.Context,
	locker lock.Locker,
	salonID uuid.UUID,
	staffID *uuid.UUID,
) (func(), error) {
	if staffID == nil || locker == nil {
		return func() {}, nil
	}
	return locker.Acquire(ctx, lock.StaffKey(salonID, *staffID))
}

// assertNoConflict runs inside the write transaction so the rows it reads stay locked.
func assertNoConflict(
	ctx context.Context,
	tx domain.Repository,
	in domain.AvailabilityInput,
) error {
	found, err := tx.FindOverlapping(
		ctx,
		in.SalonID,
		in.StaffID,
		in.StartTime,
		in.EndTime,
		in.ExcludeAppointmentID,
	)
	if err != nil {
		return err
	}

	res := domain.NewConflictResult(in, found)
	if !res.Available {
		return &domain.ConflictError{Conflicts: res.Conflicts}
	}
	return nil
}

// translateExclusion turns a storage-level overlap rejection into a ConflictError
// listing whoever won the race.
func translateExclusion(
	ctx context.Context,
	repo domain.Repository,
	in domain.AvailabilityInput,
	err error,
) error {
	if !httperr.IsExclusionConflict(err) {
		return err
	}

	found, qErr := repo.FindOverlapping(
		ctx,
		in.SalonID,
		in.StaffID,
		in.StartTime,
		in.EndTime,
		in.ExcludeAppointmentID,
	)
	if qErr != nil {
		return &domain.ConflictError{}
	}
	return &domain.ConflictError{Conflicts: domain.NewConflictResult(in, found).Conflicts}
}
