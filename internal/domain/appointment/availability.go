package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const unknownClient = "Unknown Client"

type AvailabilityInput struct {
	SalonID              uuid.UUID
	StaffID              uuid.UUID
	StartTime            time.Time
	EndTime              time.Time
	ExcludeAppointmentID *uuid.UUID
}

type Conflict struct {
	ID         uuid.UUID `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ClientName string    `json:"client_name"`
}

type ConflictResult struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
}

// NewConflictResult keeps only blocking appointments that overlap in and are not excluded.
// Repositories already filter in SQL; this keeps the verdict independent of the store.
func NewConflictResult(in AvailabilityInput, candidates []models.Appointment) ConflictResult {
	want := Interval{Start: in.StartTime, End: in.EndTime}

	conflicts := make([]Conflict, 0, len(candidates))
	for _, ap := range candidates {
		if in.ExcludeAppointmentID != nil && ap.ID == *in.ExcludeAppointmentID {
			continue
		}
		if !Status(ap.Status).Blocking() {
			continue
		}
		if !want.Overlaps(Interval{Start: ap.StartTime, End: ap.EndTime}) {
			continue
		}

		name := unknownClient
		if ap.Client != nil && ap.Client.Name != "" {
			name = ap.Client.Name
		}
		conflicts = append(conflicts, Conflict{
			ID:         ap.ID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			ClientName: name,
		})
	}
	SortConflicts(conflicts)

	return ConflictResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

// ConflictError is returned when a create or update would double-book a staff member.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "appointment_conflict"
	}
	c := e.Conflicts[0]
	return fmt.Sprintf(
		"appointment_conflict: overlaps %s [%s, %s)",
		c.ID, c.StartTime.Format(time.RFC3339), c.EndTime.Format(time.RFC3339),
	)
}
