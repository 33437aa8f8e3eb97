package handlers

import (
	"net/http"

	"wayfare/models"
	"wayfare/services/timeline"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

// CityLabelHandler resolves a calendar date to its destination label for the
// calendar header. Found=false leaves the fallback rendering to the caller.
func CityLabelHandler(c *gin.Context) {
	var req models.CityLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	label, found := timeline.CityLabelForDateKey(req.DateKey, req.Destinations)
	c.JSON(http.StatusOK, models.CityLabelResponse{Label: label, Found: found})
}
