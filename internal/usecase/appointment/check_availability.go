package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(
	repo domain.Repository,
) *CheckAvailability {
	return &CheckAvailability{
		repo: repo,
	}
}

// Execute is read-only: it reports every blocking appointment of the staff member
// that intersects the requested range.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.ConflictResult, error) {

	if err := domain.ValidateRange(in.StartTime, in.EndTime); err != nil {
		return domain.ConflictResult{}, err
	}

	found, err := uc.repo.FindOverlapping(
		ctx,
		in.SalonID,
		in.StaffID,
		in.StartTime,
		in.EndTime,
		in.ExcludeAppointmentID,
	)
	if err != nil {
		return domain.ConflictResult{}, err
	}

	return domain.NewConflictResult(in, found), nil
}
