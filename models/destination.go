package models

// Destination is one city stay within an itinerary. From/To dates are
// inclusive ISO "YYYY-MM-DD" strings; consecutive stays may share a boundary
// date (travel day). Read-only input to the city-timeline resolver.
type Destination struct {
	ID          string `json:"id"`
	City        string `json:"city"`
	Country     string `json:"country"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	OrderNumber int    `json:"order_number"`
}
