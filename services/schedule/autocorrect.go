package schedule

import "wayfare/models"

// AutoCorrectToNextOpenInterval proposes a forward-only repair for an activity
// window that does not fit the venue's open intervals. The duration is
// preserved exactly; only the start moves, and never earlier than requested.
// Returns false when no correction applies: empty interval set, non-positive
// duration, the window is already open, or nothing at or after the requested
// start can hold the duration (closed for the rest of the day).
func AutoCorrectToNextOpenInterval(intervals []models.OpenInterval, startMin, endMin int) (models.Correction, bool) {
	if len(intervals) == 0 {
		return models.Correction{}, false
	}
	duration := endMin - startMin
	if duration <= 0 {
		return models.Correction{}, false
	}
	if IsOpenForWindow(intervals, startMin, endMin) {
		return models.Correction{}, false
	}
	for _, iv := range sortedCopy(intervals) {
		// Forward-only: never propose an earlier slot, even one that fits.
		if iv.StartMin < startMin {
			continue
		}
		if iv.StartMin+duration <= iv.EndMin {
			return models.Correction{
				NewStartMin: iv.StartMin,
				NewEndMin:   iv.StartMin + duration,
			}, true
		}
	}
	return models.Correction{}, false
}
