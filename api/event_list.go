package api

import (
	"net/http"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventList returns a planning's events sorted for the weekly grid: fixed
// day rank (Monday first) then start time
func (a *API) EventList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	planningID := c.Param("id")

	planning, found, err := a.planningOwned(planningID, userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check planning ownership", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "Planning not found",
			"requestID": requestID,
		})
		return
	}

	events := []model.StreamEvent{}

	err = a.DB.
		Where("planning_id = ?", planning.ID).
		Order(model.DayOrderExpr()).
		Find(&events).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list events", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
	})
}
