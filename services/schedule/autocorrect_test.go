package schedule

import (
	"testing"

	"wayfare/models"
)

func TestAutoCorrect_NoOpWhenAlreadyOpen(t *testing.T) {
	intervals := []models.OpenInterval{{StartMin: 540, EndMin: 1020}}
	if _, ok := AutoCorrectToNextOpenInterval(intervals, 600, 660); ok {
		t.Error("open window must not be corrected")
	}
}

func TestAutoCorrect_MovesForwardPreservingDuration(t *testing.T) {
	intervals := []models.OpenInterval{
		{StartMin: 540, EndMin: 660},
		{StartMin: 720, EndMin: 1020},
	}
	// 10:30-11:30 straddles the 11:00 close; next interval starts 12:00.
	corr, ok := AutoCorrectToNextOpenInterval(intervals, 630, 690)
	if !ok {
		t.Fatal("expected a correction")
	}
	if corr.NewStartMin != 720 || corr.NewEndMin != 780 {
		t.Errorf("got %+v, want {720 780}", corr)
	}
	if corr.NewStartMin < 630 {
		t.Error("correction moved earlier than requested start")
	}
	if corr.NewEndMin-corr.NewStartMin != 60 {
		t.Error("correction changed the duration")
	}
}

func TestAutoCorrect_ForwardOnlySkipsEarlierFit(t *testing.T) {
	// An earlier interval would fit but must never be proposed.
	intervals := []models.OpenInterval{
		{StartMin: 300, EndMin: 420},
		{StartMin: 900, EndMin: 960},
	}
	corr, ok := AutoCorrectToNextOpenInterval(intervals, 600, 660)
	if !ok {
		t.Fatal("expected a correction")
	}
	if corr.NewStartMin != 900 {
		t.Errorf("got start %d, want 900 (earlier slot at 300 is off limits)", corr.NewStartMin)
	}
}

func TestAutoCorrect_NoFeasibleSlot(t *testing.T) {
	intervals := []models.OpenInterval{{StartMin: 540, EndMin: 600}}
	// Requested after the only interval's start with too long a duration.
	if _, ok := AutoCorrectToNextOpenInterval(intervals, 560, 680); ok {
		t.Error("expected no correction when nothing fits today")
	}
}

func TestAutoCorrect_DegenerateInputs(t *testing.T) {
	intervals := []models.OpenInterval{{StartMin: 540, EndMin: 1020}}
	if _, ok := AutoCorrectToNextOpenInterval(nil, 600, 660); ok {
		t.Error("empty interval set must yield no correction")
	}
	if _, ok := AutoCorrectToNextOpenInterval(intervals, 660, 660); ok {
		t.Error("zero duration must yield no correction")
	}
	if _, ok := AutoCorrectToNextOpenInterval(intervals, 700, 660); ok {
		t.Error("negative duration must yield no correction")
	}
}

func TestAutoCorrect_IdempotentAfterRepair(t *testing.T) {
	intervals := []models.OpenInterval{
		{StartMin: 540, EndMin: 660},
		{StartMin: 720, EndMin: 1020},
	}
	corr, ok := AutoCorrectToNextOpenInterval(intervals, 630, 690)
	if !ok {
		t.Fatal("expected a correction")
	}
	if _, ok := AutoCorrectToNextOpenInterval(intervals, corr.NewStartMin, corr.NewEndMin); ok {
		t.Error("correcting an already-corrected window must be a no-op")
	}
}
