package models

// OperationType discriminates the itinerary edit-operation family. Operations
// are produced upstream (assistant or bulk-edit resolver) and validated here
// before they are allowed anywhere near the persistence layer.
type OperationType string

const (
	OpAddAlternatives OperationType = "add_alternatives"
	OpRemoveActivity  OperationType = "remove_activity"
	OpSetActivityTime OperationType = "set_activity_time"
)

// Operation is a proposed itinerary edit. The Op field selects which of the
// optional payload fields apply; per-kind invariants are enforced by
// services/operations.Validate.
type Operation struct {
	Op                              OperationType `json:"op" binding:"required"`
	TargetItineraryActivityID       string        `json:"targetItineraryActivityId" binding:"required"`
	AlternativeItineraryActivityIDs []string      `json:"alternativeItineraryActivityIds,omitempty"`

	// set_activity_time payload, "HH:MM".
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}
