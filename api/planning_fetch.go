package api

import (
	"net/http"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanningFetch returns one planning with its events in grid order. The
// lookup predicate includes the owner, so a foreign planning and a missing
// one are indistinguishable to the caller
func (a *API) PlanningFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	planningID := c.Param("id")

	planning, found, err := a.planningOwned(planningID, userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch planning", zap.Error(err), zap.String("requestID", requestID))
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

		zap.L().Error("Failed to fetch planning events", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"planning": planning,
		"events":   events,
	})
}
