package schedule

import (
	"math"

	"wayfare/models"
)

// ClassifyTravelTimeConflict judges whether the gap between two consecutive
// activities leaves room for the travel estimate plus the user's buffer.
// Routing providers fail in creative ways, so every input is normalized first:
// non-finite or negative values count as 0. Total function, never fails.
func ClassifyTravelTimeConflict(in models.TravelGapInput) models.TravelGapResult {
	gap := normalizeMinutes(in.GapMinutes)
	travel := normalizeMinutes(in.TravelMinutes)
	buffer := normalizeMinutes(in.BufferMinutes)

	required := travel + buffer
	shortBy := math.Max(0, required-gap)
	slack := math.Max(0, gap-required)

	status := models.TravelStatusTight
	if shortBy > 0 {
		status = models.TravelStatusConflict
	}
	return models.TravelGapResult{
		Status:             status,
		RequiredGapMinutes: required,
		SlackMinutes:       slack,
		ShortByMinutes:     shortBy,
	}
}

func normalizeMinutes(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
