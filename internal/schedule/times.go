// Package schedule implements the availability and table-assignment engine:
// pure functions over rules, tables and bookings fetched by the caller.
package schedule

import (
	"fmt"
	"time"
)

const (
	minutesPerDay = 1440

	// Times before 06:00 belong to the late-night band of a schedule that
	// crosses midnight and are treated as occurring after the evening hours.
	earlyMorningCutoff = 360
)

// ToMinutes converts a wall-clock "HH:MM" string to minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FromMinutes formats a minute-of-day back to "HH:MM", wrapping past midnight.
func FromMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NormalizeWindow shifts the end of a window past midnight so that interval
// comparisons stay monotonic. A window with end == start stays empty.
func NormalizeWindow(start, end int) (int, int) {
	if end < start {
		end += minutesPerDay
	}
	return start, end
}

// shiftLateNight moves an early-morning window into the extended coordinates
// of the previous evening so that, e.g., a 01:00 booking conflicts with a
// 23:00–02:00 candidate generated for the same day.
func shiftLateNight(start, end int) (int, int) {
	if start < earlyMorningCutoff {
		return start + minutesPerDay, end + minutesPerDay
	}
	return start, end
}

// Overlaps reports whether two wall-clock windows on the same date conflict;
// touching endpoints do not overlap. After midnight normalization the
// half-open test runs in both the plain frame and the late-night frame (the
// 00:00–05:59 band shifted behind the previous evening), so a pre-dawn
// booking conflicts with the post-midnight tail of a crossing schedule
// without losing conflicts against an ordinary early-opening day.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	aStart, aEnd = NormalizeWindow(aStart, aEnd)
	bStart, bEnd = NormalizeWindow(bStart, bEnd)
	if aStart < bEnd && aEnd > bStart {
		return true
	}
	aStart, aEnd = shiftLateNight(aStart, aEnd)
	bStart, bEnd = shiftLateNight(bStart, bEnd)
	return aStart < bEnd && aEnd > bStart
}

// effectiveMinute orders slot starts for display: the 00:00–05:59 band sorts
// after the evening instead of before the morning.
func effectiveMinute(m int) int {
	if m < earlyMorningCutoff {
		return m + minutesPerDay
	}
	return m
}
