package models

// TravelConflictStatus is the two-way verdict on the gap between two
// consecutive activities.
type TravelConflictStatus string

const (
	TravelStatusConflict TravelConflictStatus = "conflict"
	TravelStatusTight    TravelConflictStatus = "tight"
)

// TravelGapInput carries the raw numbers fed to the conflict classifier.
// All three come from upstream (routing estimates, user settings) and may be
// negative or non-finite when the provider misbehaves; the classifier
// normalizes them rather than propagating garbage.
type TravelGapInput struct {
	GapMinutes    float64 `json:"gapMinutes"`
	TravelMinutes float64 `json:"travelMinutes"`
	BufferMinutes float64 `json:"bufferMinutes"`
}

// TravelGapResult is the classifier's stateless judgment.
type TravelGapResult struct {
	Status             TravelConflictStatus `json:"status"`
	RequiredGapMinutes float64              `json:"requiredGapMinutes"`
	SlackMinutes       float64              `json:"slackMinutes"`
	ShortByMinutes     float64              `json:"shortByMinutes"`
}
