package handlers

import (
	"net/http"

	"wayfare/config"
	"wayfare/models"
	"wayfare/services/schedule"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

// TravelConflictHandler classifies the gap between two consecutive activities.
// A missing buffer falls back to the configured default; everything else the
// classifier normalizes itself, so garbage from the routing provider still
// yields a well-formed verdict.
func TravelConflictHandler(c *gin.Context) {
	var req models.TravelConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	buffer := config.AppConfig.DefaultBufferMinutes
	if req.BufferMinutes != nil {
		buffer = *req.BufferMinutes
	}

	result := schedule.ClassifyTravelTimeConflict(models.TravelGapInput{
		GapMinutes:    req.GapMinutes,
		TravelMinutes: req.TravelMinutes,
		BufferMinutes: buffer,
	})
	c.JSON(http.StatusOK, result)
}
