package routes

import (
	"strings"
	"time"

	"wayfare/config"
	"wayfare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers venue open-hours endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.POST("/open-intervals", hb.OpenIntervalsHandler)
		api.POST("/check-window", hb.CheckWindowHandler)
		api.POST("/check-windows", hb.CheckWindowsHandler)
	}
}

// RegisterScheduleRoutes registers schedule-consistency endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.POST("/travel-conflict", hb.TravelConflictHandler)
	}
}

// RegisterOperationRoutes registers edit-operation validation endpoints.
func RegisterOperationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/operations")
	{
		api.POST("/validate", hb.ValidateOperationHandler)
	}
}

// RegisterItineraryRoutes registers itinerary read endpoints.
func RegisterItineraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itinerary")
	{
		api.POST("/city-label", hb.CityLabelHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := strings.Split(config.AppConfig.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVenueRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterOperationRoutes(r, hb)
	RegisterItineraryRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
