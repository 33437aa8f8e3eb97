package models

// OpenIntervalsRequest asks for a venue's materialized open intervals on a
// calendar date. Hours rows come along in the payload; this service keeps no
// venue storage of its own.
type OpenIntervalsRequest struct {
	Hours []WeeklyHoursRow `json:"hours" binding:"required"`
	Date  string           `json:"date" binding:"required"` // "2006-01-02"
}

// OpenIntervalsResponse carries the weekday the date resolved to and that
// day's open intervals, sorted by (startMin, endMin).
type OpenIntervalsResponse struct {
	Day       int            `json:"day"`
	Intervals []OpenInterval `json:"intervals"`
}

// CheckWindowRequest asks whether one activity window is fully open on the
// given date, and for a repair suggestion when it is not.
type CheckWindowRequest struct {
	Hours  []WeeklyHoursRow `json:"hours" binding:"required"`
	Date   string           `json:"date" binding:"required"`
	Window ActivityWindow   `json:"window" binding:"required"`
}

// CheckWindowResult is one window's verdict. Suggestion is set only when the
// window is closed and a forward shift fits; ClosedAllDay is set when no open
// interval can hold the window at or after its requested start.
type CheckWindowResult struct {
	Window       ActivityWindow `json:"window"`
	Open         bool           `json:"open"`
	Suggestion   *Correction    `json:"suggestion,omitempty"`
	ClosedAllDay bool           `json:"closedAllDay,omitempty"`
}

// CheckWindowsRequest checks a whole day's activity windows against one
// venue's hours in a single round trip.
type CheckWindowsRequest struct {
	Hours   []WeeklyHoursRow `json:"hours" binding:"required"`
	Date    string           `json:"date" binding:"required"`
	Windows []ActivityWindow `json:"windows" binding:"required,min=1"`
}

// TravelConflictRequest carries raw gap/travel/buffer numbers from the
// dashboard. BufferMinutes is optional; when omitted the configured default
// buffer applies.
type TravelConflictRequest struct {
	GapMinutes    float64  `json:"gapMinutes"`
	TravelMinutes float64  `json:"travelMinutes"`
	BufferMinutes *float64 `json:"bufferMinutes,omitempty"`
}

// CityLabelRequest resolves a calendar date to a destination label.
type CityLabelRequest struct {
	DateKey      string        `json:"dateKey" binding:"required"`
	Destinations []Destination `json:"destinations" binding:"required"`
}

// CityLabelResponse carries the rendered label. Found is false when no
// destination contains the date; the caller decides the fallback.
type CityLabelResponse struct {
	Label string `json:"label"`
	Found bool   `json:"found"`
}
