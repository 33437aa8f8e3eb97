package schedule

import (
	"sort"

	"wayfare/models"
)

// OpenIntervalsForDay materializes a venue's open intervals for one weekday
// from its raw weekly hour rows. Rows for other days are ignored. A row whose
// close is numerically at or before its open runs past midnight and yields two
// pieces for the queried day itself: {0, closeMin} (the tail reaching into the
// day) and {openMin, 1440} (the day's own overnight start). The result is
// sorted by (StartMin, EndMin); overlapping rows are kept as-is.
func OpenIntervalsForDay(rows []models.WeeklyHoursRow, day int) []models.OpenInterval {
	var intervals []models.OpenInterval
	for _, row := range rows {
		if row.Day != day {
			continue
		}
		openMin := clampMinute(row.OpenHour*60 + row.OpenMinute)
		closeMin := clampMinute(row.CloseHour*60 + row.CloseMinute)

		if closeMin > openMin {
			intervals = append(intervals, models.OpenInterval{StartMin: openMin, EndMin: closeMin})
			continue
		}
		// Overnight period.
		if closeMin > 0 {
			intervals = append(intervals, models.OpenInterval{StartMin: 0, EndMin: closeMin})
		}
		intervals = append(intervals, models.OpenInterval{StartMin: openMin, EndMin: MinutesPerDay})
	}
	sortIntervals(intervals)
	return intervals
}

// IsOpenForWindow reports whether some single interval fully contains
// [startMin, endMin]. A window straddling the gap between two back-to-back
// intervals is not open even when their union covers it.
func IsOpenForWindow(intervals []models.OpenInterval, startMin, endMin int) bool {
	for _, iv := range intervals {
		if iv.StartMin <= startMin && endMin <= iv.EndMin {
			return true
		}
	}
	return false
}

// SuggestNextOpenStart returns the start of the first interval, in
// (StartMin, EndMin) order, that begins at or after afterMin and still has
// room for durationMin. Returns false when no interval qualifies.
func SuggestNextOpenStart(intervals []models.OpenInterval, afterMin, durationMin int) (int, bool) {
	for _, iv := range sortedCopy(intervals) {
		if iv.StartMin < afterMin {
			continue
		}
		if iv.StartMin+durationMin <= iv.EndMin {
			return iv.StartMin, true
		}
	}
	return 0, false
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > MinutesPerDay {
		return MinutesPerDay
	}
	return m
}

func sortIntervals(intervals []models.OpenInterval) {
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].StartMin != intervals[j].StartMin {
			return intervals[i].StartMin < intervals[j].StartMin
		}
		return intervals[i].EndMin < intervals[j].EndMin
	})
}

func sortedCopy(intervals []models.OpenInterval) []models.OpenInterval {
	out := make([]models.OpenInterval, len(intervals))
	copy(out, intervals)
	sortIntervals(out)
	return out
}
