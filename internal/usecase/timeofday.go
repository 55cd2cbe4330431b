package usecase

import (
	"time"
)

// Time-of-day values travel as strings ("10:00") but postgres returns time
// columns as "10:00:00", so comparisons always go through parseTimeOfDay.
func parseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// withinWindow reports whether t falls inside [start, end). The start boundary
// is inclusive, the end boundary exclusive: a booking at the exact end of a
// window is rejected.
func withinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
