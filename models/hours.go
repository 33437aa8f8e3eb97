package models

// WeeklyHoursRow is one opening period of a venue on one weekday, as stored by
// the backend. A venue may carry several rows for the same day (e.g., lunch and
// dinner service). A row whose close is numerically at or before its open
// represents hours that run past midnight.
type WeeklyHoursRow struct {
	Day         int `json:"day"`          // 0 = Sunday .. 6 = Saturday
	OpenHour    int `json:"open_hour"`    // 0..23
	OpenMinute  int `json:"open_minute"`  // 0..59
	CloseHour   int `json:"close_hour"`   // 0..23
	CloseMinute int `json:"close_minute"` // 0..59
}

// OpenInterval is a contiguous open period on one calendar day, in minutes
// from local midnight. StartMin < EndMin always holds; EndMin may be 1440.
type OpenInterval struct {
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}

// ActivityWindow is a scheduled activity's time window on a given day,
// in minutes from midnight.
type ActivityWindow struct {
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}

// Correction is a repaired activity window proposed by the auto-correction
// routine. The duration always equals the original request's duration.
type Correction struct {
	NewStartMin int `json:"newStartMin"`
	NewEndMin   int `json:"newEndMin"`
}
