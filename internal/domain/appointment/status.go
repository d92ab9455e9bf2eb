package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
	StatusNoShow     Status = "no-show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress,
		StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// Blocking reports whether an appointment in this status occupies its staff member's time.
func (s Status) Blocking() bool {
	return s != StatusCanceled && s != StatusNoShow
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusNoShow
}

// NonBlockingStatuses are ignored by the overlap check.
var NonBlockingStatuses = []string{string(StatusCanceled), string(StatusNoShow)}

// ===============================
// Transitions
// ===============================

type Event string

const (
	EventConfirm    Event = "confirm"
	EventCheckIn    Event = "check-in"
	EventStart      Event = "start"
	EventComplete   Event = "complete"
	EventReschedule Event = "reschedule"
	EventCancel     Event = "cancel"
	EventNoShow     Event = "no-show"
)

type transition struct {
	from []Status
	to   Status // empty keeps the current status
}

var transitions = map[Event]transition{
	EventConfirm:    {from: []Status{StatusPending}, to: StatusConfirmed},
	EventCheckIn:    {from: []Status{StatusPending, StatusConfirmed}, to: StatusCheckedIn},
	EventStart:      {from: []Status{StatusCheckedIn}, to: StatusInProgress},
	EventComplete:   {from: []Status{StatusCheckedIn, StatusInProgress}, to: StatusCompleted},
	EventReschedule: {from: []Status{StatusPending, StatusConfirmed, StatusCheckedIn}},
	EventCancel:     {from: []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress}, to: StatusCanceled},
	EventNoShow:     {from: []Status{StatusPending, StatusConfirmed}, to: StatusNoShow},
}

// Next returns the status reached by applying ev to current, or an invalid_transition error.
func Next(current Status, ev Event) (Status, error) {
	t, ok := transitions[ev]
	if !ok {
		return current, httperr.ErrBusiness("invalid_transition")
	}
	for _, from := range t.from {
		if from == current {
			if t.to == "" {
				return current, nil
			}
			return t.to, nil
		}
	}
	return current, httperr.ErrBusiness("invalid_transition")
}

// InitialStatus is pending unless the salon confirms bookings automatically.
func InitialStatus(autoConfirm bool) Status {
	if autoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}
