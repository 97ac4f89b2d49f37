package api

import (
	"net/http"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlanningDelete removes a planning the user owns together with all of its
// events. The cascade runs in one transaction instead of leaning on
// driver-specific foreign key modes, so a failure can't leave orphaned
// events or an event-less planning
func (a *API) PlanningDelete(c *gin.Context) {
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

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("planning_id = ?", planning.ID).
			Delete(model.StreamEvent{}).
			Error
		if err != nil {
			return err
		}

		return tx.Delete(&planning).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete planning", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Planning deleted",
	})
}
