package handlers

import (
	"errors"
	"net/http"

	"wayfare/models"
	"wayfare/services/operations"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidateOperationHandler judges a proposed itinerary edit. Valid operations
// get a 200 with {valid:true}; rejected ones get a 422 naming the violated
// invariant so the producer can discard or rebuild the whole operation.
func ValidateOperationHandler(c *gin.Context) {
	var op models.Operation
	if err := c.ShouldBindJSON(&op); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	if err := operations.Validate(op); err != nil {
		var verr *operations.ValidationError
		if errors.As(err, &verr) {
			requestLogger(c).Warn("Operation rejected",
				zap.String("op", string(op.Op)),
				zap.String("field", verr.Field),
				zap.String("rule", verr.Rule))
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"valid":   false,
				"field":   verr.Field,
				"rule":    verr.Rule,
				"message": verr.Message,
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
