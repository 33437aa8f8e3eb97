// Package operations validates proposed itinerary edits before they may reach
// the mutation layer. Operations arrive as plain structured data from an
// upstream producer (assistant or bulk-import resolver); this package only
// judges them, it never originates or applies them.
package operations

import (
	"wayfare/models"
	"wayfare/services/schedule"
)

// MaxAlternatives caps how many alternative activities one target may carry.
const MaxAlternatives = 3

// Validate checks a proposed operation against its kind's invariants. A nil
// return means the operation may be forwarded; otherwise the error is a
// *ValidationError naming the violated invariant and the whole operation
// must be discarded.
func Validate(op models.Operation) error {
	switch op.Op {
	case models.OpAddAlternatives, models.OpRemoveActivity, models.OpSetActivityTime:
	default:
		return newValidationError("op", "unknown", "unknown operation kind: "+string(op.Op))
	}
	if op.TargetItineraryActivityID == "" {
		return newValidationError("targetItineraryActivityId", "required", "target activity id is required")
	}
	switch op.Op {
	case models.OpAddAlternatives:
		return validateAddAlternatives(op)
	case models.OpSetActivityTime:
		return validateSetActivityTime(op)
	default:
		return nil
	}
}

func validateAddAlternatives(op models.Operation) error {
	alts := op.AlternativeItineraryActivityIDs
	if len(alts) == 0 {
		return newValidationError("alternativeItineraryActivityIds", "min", "at least one alternative is required")
	}
	if len(alts) > MaxAlternatives {
		return newValidationError("alternativeItineraryActivityIds", "max", "at most 3 alternatives are allowed")
	}
	seen := make(map[string]struct{}, len(alts))
	for _, id := range alts {
		if id == "" {
			return newValidationError("alternativeItineraryActivityIds", "required", "alternative id must not be empty")
		}
		if id == op.TargetItineraryActivityID {
			return newValidationError("alternativeItineraryActivityIds", "target_overlap", "alternatives must not include the target activity")
		}
		if _, dup := seen[id]; dup {
			return newValidationError("alternativeItineraryActivityIds", "duplicate", "alternative ids must be distinct")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateSetActivityTime(op models.Operation) error {
	start, ok := schedule.ParseTimeToMinutes(op.StartTime)
	if !ok {
		return newValidationError("startTime", "format", "startTime must be HH:MM")
	}
	end, ok := schedule.ParseTimeToMinutes(op.EndTime)
	if !ok {
		return newValidationError("endTime", "format", "endTime must be HH:MM")
	}
	if end <= start {
		return newValidationError("endTime", "order", "endTime must be after startTime")
	}
	return nil
}
