package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler handed to route registration.
type HandlerBundle struct {
	// Venue hours endpoints.
	OpenIntervalsHandler gin.HandlerFunc
	CheckWindowHandler   gin.HandlerFunc
	CheckWindowsHandler  gin.HandlerFunc

	// Schedule endpoints.
	TravelConflictHandler gin.HandlerFunc

	// Operation validation endpoints.
	ValidateOperationHandler gin.HandlerFunc

	// Itinerary endpoints.
	CityLabelHandler gin.HandlerFunc

	// Liveness.
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the default handlers.
func NewHandlerBundle() *HandlerBundle {
	return &HandlerBundle{
		OpenIntervalsHandler:     OpenIntervalsHandler,
		CheckWindowHandler:       CheckWindowHandler,
		CheckWindowsHandler:      CheckWindowsHandler,
		TravelConflictHandler:    TravelConflictHandler,
		ValidateOperationHandler: ValidateOperationHandler,
		CityLabelHandler:         CityLabelHandler,
		HealthHandler:            HealthHandler,
	}
}
