package handlers

import (
	"net/http"

	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
