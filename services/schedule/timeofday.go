// Package schedule is the itinerary scheduling-consistency kernel: pure
// functions over venue opening hours and activity time windows, all in
// minutes from local midnight. Nothing here touches storage, the network,
// or process-wide state; callers pass fresh data on every call.
package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// MinutesPerDay bounds every minutes-from-midnight value in this package.
const MinutesPerDay = 1440

var (
	timeOfDayRe = regexp.MustCompile(`^(\d{2}):(\d{2})(?::\d{2})?$`)
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseTimeToMinutes converts strict "HH:MM" or "HH:MM:SS" text to minutes
// from midnight. Seconds are matched but never added to the result. Returns
// false for anything else: wrong shape, hour > 23, minute > 59.
func ParseTimeToMinutes(value string) (int, bool) {
	m := timeOfDayRe.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatMinutesToHHmm renders minutes-from-midnight as "HH:MM". Non-finite or
// out-of-range input is clamped into [0, 1439] first, so formatting is total.
func FormatMinutesToHHmm(minutes float64) string {
	m := 0
	switch {
	case math.IsNaN(minutes):
		m = 0
	case minutes < 0:
		m = 0
	case minutes > MinutesPerDay-1:
		m = MinutesPerDay - 1
	default:
		m = int(minutes)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DayOfWeekFromISODate resolves a "YYYY-MM-DD" date to its weekday,
// 0 (Sunday) through 6 (Saturday). The date is interpreted at UTC midnight so
// the host timezone can never shift the weekday. Returns false for malformed
// or impossible dates.
func DayOfWeekFromISODate(isoDate string) (int, bool) {
	if !isoDateRe.MatchString(isoDate) {
		return 0, false
	}
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// IsISODateString reports whether value has strict "YYYY-MM-DD" shape. Shape
// only; callers that need a real calendar date use DayOfWeekFromISODate.
func IsISODateString(value string) bool {
	return isoDateRe.MatchString(value)
}
