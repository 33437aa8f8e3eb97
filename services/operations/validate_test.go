package operations

import (
	"errors"
	"testing"

	"wayfare/models"
)

func addAlts(target string, alts ...string) models.Operation {
	return models.Operation{
		Op:                              models.OpAddAlternatives,
		TargetItineraryActivityID:       target,
		AlternativeItineraryActivityIDs: alts,
	}
}

func TestValidate_AddAlternatives(t *testing.T) {
	tests := []struct {
		name     string
		op       models.Operation
		wantRule string // empty means valid
	}{
		{"one alternative", addAlts("a1", "b1"), ""},
		{"three unique alternatives", addAlts("a1", "b1", "b2", "b3"), ""},
		{"no alternatives", addAlts("a1"), "min"},
		{"four alternatives", addAlts("a1", "b1", "b2", "b3", "b4"), "max"},
		{"duplicate alternative", addAlts("a1", "b1", "b1"), "duplicate"},
		{"alternative equals target", addAlts("a1", "b1", "a1"), "target_overlap"},
		{"empty alternative id", addAlts("a1", ""), "required"},
		{"missing target", addAlts("", "b1"), "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.op)
			if tt.wantRule == "" {
				if err != nil {
					t.Fatalf("want valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			if verr.Rule != tt.wantRule {
				t.Errorf("got rule %q, want %q (%v)", verr.Rule, tt.wantRule, verr)
			}
		})
	}
}

func TestValidate_OtherKinds(t *testing.T) {
	remove := models.Operation{Op: models.OpRemoveActivity, TargetItineraryActivityID: "a1"}
	if err := Validate(remove); err != nil {
		t.Errorf("remove_activity with target should be valid, got %v", err)
	}

	setTime := models.Operation{
		Op:                        models.OpSetActivityTime,
		TargetItineraryActivityID: "a1",
		StartTime:                 "09:00",
		EndTime:                   "10:30",
	}
	if err := Validate(setTime); err != nil {
		t.Errorf("well-formed set_activity_time should be valid, got %v", err)
	}

	setTime.EndTime = "08:00"
	if err := Validate(setTime); err == nil {
		t.Error("end before start must be rejected")
	}

	setTime.EndTime = "25:00"
	if err := Validate(setTime); err == nil {
		t.Error("malformed end time must be rejected")
	}

	unknown := models.Operation{Op: "reshuffle_everything", TargetItineraryActivityID: "a1"}
	if err := Validate(unknown); err == nil {
		t.Error("unknown operation kind must be rejected")
	}
}
