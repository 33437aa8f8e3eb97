// Package timeline derives calendar-header labels from an itinerary's
// destination date ranges.
package timeline

import (
	"sort"

	"wayfare/models"
	"wayfare/services/schedule"
)

// CityLabelForDateKey labels a calendar date with the destination(s) it falls
// in. Resolution rules, in order:
//
//   - On a boundary day, where one destination ends and a different one
//     starts, the label is "<ending city> → <starting city>", earlier
//     order_number first. Only the exact shared day gets the transition label.
//   - A date that starts a destination takes that destination's city even when
//     the date is also an interior day of another stay.
//   - Otherwise the containing destination's city, lowest order_number first.
//
// Returns false when the date key is malformed or no destination contains it;
// the caller decides the fallback rendering.
func CityLabelForDateKey(dateKey string, destinations []models.Destination) (string, bool) {
	if !schedule.IsISODateString(dateKey) {
		return "", false
	}

	// ISO date strings order lexicographically, so plain string comparison is
	// the containment test.
	var matches, starting, ending []models.Destination
	for _, d := range destinations {
		if d.FromDate <= dateKey && dateKey <= d.ToDate {
			matches = append(matches, d)
		}
		if d.FromDate == dateKey {
			starting = append(starting, d)
		}
		if d.ToDate == dateKey {
			ending = append(ending, d)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	byOrder(matches)
	byOrder(starting)
	byOrder(ending)

	if len(ending) > 0 && len(starting) > 0 && ending[0].ID != starting[0].ID {
		a, b := ending[0], starting[0]
		if b.OrderNumber < a.OrderNumber {
			a, b = b, a
		}
		return a.City + " → " + b.City, true
	}
	if len(starting) > 0 {
		return starting[0].City, true
	}
	return matches[0].City, true
}

func byOrder(ds []models.Destination) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].OrderNumber < ds[j].OrderNumber })
}
