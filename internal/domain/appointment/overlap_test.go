package appointment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var base = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestOverlapsHalfOpen(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"adjacent before", Interval{at(9, 0), at(10, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"adjacent after", Interval{at(11, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, false},
		{"partial", Interval{at(10, 30), at(11, 30)}, Interval{at(10, 0), at(11, 0)}, true},
		{"contained", Interval{at(10, 15), at(10, 45)}, Interval{at(10, 0), at(11, 0)}, true},
		{"containing", Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"identical", Interval{at(10, 0), at(11, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"disjoint", Interval{at(13, 0), at(14, 0)}, Interval{at(10, 0), at(11, 0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestOverlapsMatchesMinuteGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randInterval := func() (Interval, int, int) {
		s := rng.Intn(24 * 60)
		e := s + 1 + rng.Intn(180)
		return Interval{
			Start: base.Add(time.Duration(s) * time.Minute),
			End:   base.Add(time.Duration(e) * time.Minute),
		}, s, e
	}

	for i := 0; i < 2000; i++ {
		a, as, ae := randInterval()
		b, bs, be := randInterval()

		shared := false
		for m := as; m < ae; m++ {
			if m >= bs && m < be {
				shared = true
				break
			}
		}

		require.Equal(t, shared, a.Overlaps(b), "a=[%d,%d) b=[%d,%d)", as, ae, bs, be)
	}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(at(10, 0), at(10, 1)))
	assert.True(t, httperr.IsBusiness(ValidateRange(at(10, 0), at(10, 0)), "invalid_time_range"))
	assert.True(t, httperr.IsBusiness(ValidateRange(at(11, 0), at(10, 0)), "invalid_time_range"))
}

func TestNewConflictResult(t *testing.T) {
	staff := uuid.New()
	self := uuid.New()

	existing := []models.Appointment{
		{ID: uuid.New(), StartTime: at(11, 0), EndTime: at(12, 0), Status: "confirmed", Client: &models.Client{Name: "Bea"}},
		{ID: uuid.New(), StartTime: at(10, 0), EndTime: at(11, 0), Status: "pending"},
		{ID: uuid.New(), StartTime: at(10, 0), EndTime: at(12, 0), Status: "canceled", Client: &models.Client{Name: "Ghost"}},
		{ID: uuid.New(), StartTime: at(10, 30), EndTime: at(11, 30), Status: "no-show"},
		{ID: self, StartTime: at(10, 0), EndTime: at(11, 0), Status: "checked-in"},
		{ID: uuid.New(), StartTime: at(12, 0), EndTime: at(13, 0), Status: "pending"},
	}

	res := NewConflictResult(AvailabilityInput{
		StaffID:              staff,
		StartTime:            at(10, 30),
		EndTime:              at(12, 0),
		ExcludeAppointmentID: &self,
	}, existing)

	assert.False(t, res.Available)
	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, existing[1].ID, res.Conflicts[0].ID)
	assert.Equal(t, "Unknown Client", res.Conflicts[0].ClientName)
	assert.Equal(t, existing[0].ID, res.Conflicts[1].ID)
	assert.Equal(t, "Bea", res.Conflicts[1].ClientName)
}

func TestNewConflictResultEmpty(t *testing.T) {
	res := NewConflictResult(AvailabilityInput{StartTime: at(9, 0), EndTime: at(10, 0)}, nil)

	assert.True(t, res.Available)
	assert.NotNil(t, res.Conflicts)
	assert.Empty(t, res.Conflicts)
}

func TestConflictErrorMessage(t *testing.T) {
	id := uuid.New()
	err := &ConflictError{Conflicts: []Conflict{{ID: id, StartTime: at(10, 0), EndTime: at(11, 0)}}}

	assert.Contains(t, err.Error(), id.String())
	assert.Equal(t, "appointment_conflict", (&ConflictError{}).Error())
}
