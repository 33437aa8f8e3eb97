package schedule

import (
	"reflect"
	"testing"

	"wayfare/models"
)

func TestOpenIntervalsForDay_SingleRow(t *testing.T) {
	rows := []models.WeeklyHoursRow{
		{Day: 1, OpenHour: 9, OpenMinute: 0, CloseHour: 17, CloseMinute: 0},
	}
	got := OpenIntervalsForDay(rows, 1)
	want := []models.OpenInterval{{StartMin: 540, EndMin: 1020}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if out := OpenIntervalsForDay(rows, 2); len(out) != 0 {
		t.Errorf("day 2 should have no intervals, got %v", out)
	}
}

func TestOpenIntervalsForDay_Overnight(t *testing.T) {
	// Friday 20:00 - 02:00 materializes both pieces on Friday itself.
	rows := []models.WeeklyHoursRow{
		{Day: 5, OpenHour: 20, OpenMinute: 0, CloseHour: 2, CloseMinute: 0},
	}
	got := OpenIntervalsForDay(rows, 5)
	want := []models.OpenInterval{
		{StartMin: 0, EndMin: 120},
		{StartMin: 1200, EndMin: 1440},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOpenIntervalsForDay_MidnightClose(t *testing.T) {
	// Closing exactly at 00:00 produces only the evening piece.
	rows := []models.WeeklyHoursRow{
		{Day: 3, OpenHour: 18, OpenMinute: 0, CloseHour: 0, CloseMinute: 0},
	}
	got := OpenIntervalsForDay(rows, 3)
	want := []models.OpenInterval{{StartMin: 1080, EndMin: 1440}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOpenIntervalsForDay_MultipleRowsSorted(t *testing.T) {
	// Lunch and dinner service, given out of order.
	rows := []models.WeeklyHoursRow{
		{Day: 2, OpenHour: 18, OpenMinute: 30, CloseHour: 22, CloseMinute: 0},
		{Day: 2, OpenHour: 11, OpenMinute: 30, CloseHour: 14, CloseMinute: 0},
	}
	got := OpenIntervalsForDay(rows, 2)
	want := []models.OpenInterval{
		{StartMin: 690, EndMin: 840},
		{StartMin: 1110, EndMin: 1320},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsOpenForWindow(t *testing.T) {
	intervals := []models.OpenInterval{
		{StartMin: 540, EndMin: 720},  // 09:00-12:00
		{StartMin: 720, EndMin: 1020}, // 12:00-17:00, back-to-back
	}
	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"inside first", 600, 700, true},
		{"exact fit", 540, 720, true},
		{"straddles back-to-back boundary", 700, 800, false},
		{"before opening", 480, 560, false},
		{"after closing", 1000, 1080, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpenForWindow(intervals, tt.start, tt.end); got != tt.want {
				t.Errorf("IsOpenForWindow(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
	if IsOpenForWindow(nil, 600, 660) {
		t.Error("empty interval set should never be open")
	}
}

func TestIsOpenForWindow_OverlappingIntervals(t *testing.T) {
	// Overlaps from raw data must not confuse containment.
	intervals := []models.OpenInterval{
		{StartMin: 540, EndMin: 900},
		{StartMin: 600, EndMin: 1020},
	}
	if !IsOpenForWindow(intervals, 700, 1000) {
		t.Error("window inside second interval should be open")
	}
	if IsOpenForWindow(intervals, 500, 1000) {
		t.Error("window exceeding every single interval should be closed")
	}
}

func TestSuggestNextOpenStart(t *testing.T) {
	intervals := []models.OpenInterval{
		{StartMin: 540, EndMin: 660},
		{StartMin: 720, EndMin: 1020},
	}
	tests := []struct {
		name     string
		after    int
		duration int
		want     int
		ok       bool
	}{
		{"first interval qualifies", 0, 60, 540, true},
		{"first too short, falls to second", 0, 180, 720, true},
		{"after skips first", 600, 60, 720, true},
		{"nothing fits", 0, 400, 0, false},
		{"after everything", 1100, 30, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestNextOpenStart(intervals, tt.after, tt.duration)
			if ok != tt.ok || got != tt.want {
				t.Errorf("SuggestNextOpenStart(%d, %d) = (%d, %v), want (%d, %v)",
					tt.after, tt.duration, got, ok, tt.want, tt.ok)
			}
		})
	}
}
