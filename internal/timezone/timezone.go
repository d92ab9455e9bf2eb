package timezone

import (
	"time"
	_ "time/tzdata"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to UTC for empty or unknown names.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayRange returns [midnight, next midnight) of date's calendar day in tz.
// Days are built with AddDate so DST days keep their real length.
func DayRange(date time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func MonthRange(year int, month time.Month, tz string) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, Location(tz))
	return start, start.AddDate(0, 1, 0)
}
