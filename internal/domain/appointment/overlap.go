package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Overlaps: [a,b) and [c,d) intersect iff a < d and c < b.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

func ValidateRange(start, end time.Time) error {
	if !(Interval{Start: start, End: end}).Valid() {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}

func SortConflicts(cs []Conflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].StartTime.Equal(cs[j].StartTime) {
			return cs[i].ID.String() < cs[j].ID.String()
		}
		return cs[i].StartTime.Before(cs[j].StartTime)
	})
}
