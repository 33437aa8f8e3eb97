package handlers

import (
	"fmt"
	"net/http"

	"wayfare/models"
	"wayfare/services/schedule"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

// OpenIntervalsHandler materializes a venue's open intervals for the weekday
// of the requested date. Hours rows ride along in the payload; nothing is
// stored server-side.
func OpenIntervalsHandler(c *gin.Context) {
	var req models.OpenIntervalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	day, ok := schedule.DayOfWeekFromISODate(req.Date)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must be YYYY-MM-DD")
		return
	}

	intervals := schedule.OpenIntervalsForDay(req.Hours, day)
	if intervals == nil {
		intervals = []models.OpenInterval{}
	}
	c.JSON(http.StatusOK, models.OpenIntervalsResponse{Day: day, Intervals: intervals})
}

// CheckWindowHandler gates one activity window against a venue's hours and,
// when the window is closed, attaches the forward-only repair suggestion.
func CheckWindowHandler(c *gin.Context) {
	var req models.CheckWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	day, ok := schedule.DayOfWeekFromISODate(req.Date)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must be YYYY-MM-DD")
		return
	}
	if req.Window.EndMin <= req.Window.StartMin {
		utils.JSONError(c, http.StatusBadRequest, "Invalid window", "endMin must be greater than startMin")
		return
	}

	intervals := schedule.OpenIntervalsForDay(req.Hours, day)
	c.JSON(http.StatusOK, checkOneWindow(intervals, req.Window))
}

// CheckWindowsHandler checks a whole day's activity windows against one
// venue's hours in a single round trip. One malformed window rejects the
// whole batch.
func CheckWindowsHandler(c *gin.Context) {
	var req models.CheckWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	day, ok := schedule.DayOfWeekFromISODate(req.Date)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "date must be YYYY-MM-DD")
		return
	}
	for i, w := range req.Windows {
		if w.EndMin <= w.StartMin {
			utils.JSONError(c, http.StatusBadRequest, "Invalid window",
				fmt.Sprintf("windows[%d]: endMin must be greater than startMin", i))
			return
		}
	}

	intervals := schedule.OpenIntervalsForDay(req.Hours, day)
	results := make([]models.CheckWindowResult, 0, len(req.Windows))
	for _, w := range req.Windows {
		results = append(results, checkOneWindow(intervals, w))
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "results": results})
}

func checkOneWindow(intervals []models.OpenInterval, w models.ActivityWindow) models.CheckWindowResult {
	result := models.CheckWindowResult{Window: w}
	if schedule.IsOpenForWindow(intervals, w.StartMin, w.EndMin) {
		result.Open = true
		return result
	}
	if corr, ok := schedule.AutoCorrectToNextOpenInterval(intervals, w.StartMin, w.EndMin); ok {
		result.Suggestion = &corr
		return result
	}
	result.ClosedAllDay = true
	return result
}
