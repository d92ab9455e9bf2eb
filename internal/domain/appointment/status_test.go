package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestNextAllowedTransitions(t *testing.T) {
	cases := []struct {
		from Status
		ev   Event
		want Status
	}{
		{StatusPending, EventConfirm, StatusConfirmed},
		{StatusPending, EventCheckIn, StatusCheckedIn},
		{StatusConfirmed, EventCheckIn, StatusCheckedIn},
		{StatusCheckedIn, EventStart, StatusInProgress},
		{StatusCheckedIn, EventComplete, StatusCompleted},
		{StatusInProgress, EventComplete, StatusCompleted},
		{StatusPending, EventReschedule, StatusPending},
		{StatusConfirmed, EventReschedule, StatusConfirmed},
		{StatusCheckedIn, EventReschedule, StatusCheckedIn},
		{StatusPending, EventCancel, StatusCanceled},
		{StatusConfirmed, EventCancel, StatusCanceled},
		{StatusCheckedIn, EventCancel, StatusCanceled},
		{StatusInProgress, EventCancel, StatusCanceled},
		{StatusPending, EventNoShow, StatusNoShow},
		{StatusConfirmed, EventNoShow, StatusNoShow},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"/"+string(tc.ev), func(t *testing.T) {
			got, err := Next(tc.from, tc.ev)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextRejectsEverythingElse(t *testing.T) {
	allowed := map[Status]map[Event]bool{}
	for ev, tr := range transitions {
		for _, from := range tr.from {
			if allowed[from] == nil {
				allowed[from] = map[Event]bool{}
			}
			allowed[from][ev] = true
		}
	}

	statuses := []Status{
		StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress,
		StatusCompleted, StatusCanceled, StatusNoShow,
	}
	events := []Event{
		EventConfirm, EventCheckIn, EventStart, EventComplete,
		EventReschedule, EventCancel, EventNoShow, Event("teleport"),
	}

	for _, s := range statuses {
		for _, ev := range events {
			if allowed[s][ev] {
				continue
			}
			got, err := Next(s, ev)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s/%s", s, ev)
			assert.Equal(t, s, got)
		}
	}
}

func TestTerminalStatusesAcceptNoEvents(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		assert.True(t, s.Terminal())
		for ev := range transitions {
			_, err := Next(s, ev)
			assert.Error(t, err, "%s/%s", s, ev)
		}
	}
}

func TestBlockingStatuses(t *testing.T) {
	assert.False(t, StatusCanceled.Blocking())
	assert.False(t, StatusNoShow.Blocking())
	assert.True(t, StatusPending.Blocking())
	assert.True(t, StatusInProgress.Blocking())
	assert.True(t, StatusCompleted.Blocking())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(false))
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
}

func TestActionsStampTimes(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, CheckIn(ap, now))
	assert.Equal(t, string(StatusCheckedIn), ap.Status)
	require.NotNil(t, ap.ActualStartTime)
	assert.Equal(t, now, *ap.ActualStartTime)

	require.NoError(t, Start(ap))
	end := now.Add(45 * time.Minute)
	require.NoError(t, Complete(ap, end))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, end, *ap.ActualEndTime)

	err := Cancel(ap, end, "late", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Nil(t, ap.CanceledAt)
}

func TestCancelRecordsReason(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	by := uuid.New()
	ap := &models.Appointment{Status: string(StatusInProgress)}

	require.NoError(t, Cancel(ap, now, "client left", &by))
	assert.Equal(t, string(StatusCanceled), ap.Status)
	assert.Equal(t, "client left", ap.CancellationReason)
	assert.Equal(t, now, *ap.CanceledAt)
	assert.Equal(t, by, *ap.CanceledBy)
}

func TestFailedActionLeavesAppointmentUntouched(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	before := *ap

	assert.Error(t, CheckIn(ap, time.Now()))
	assert.Error(t, MarkNoShow(ap))
	assert.Error(t, Confirm(ap))
	assert.Error(t, CanReschedule(ap))
	assert.Equal(t, before, *ap)
}
