package api

import (
	"errors"
	"net/http"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventDelete removes an event, but only if its parent planning belongs to
// the logged in user. Returns the deleted event so the frontend can undo
// optimistic removals
func (a *API) EventDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	eventID := c.Param("id")

	var event model.StreamEvent

	// The planning's columns would shadow the event's on a bare SELECT *
	err := a.DB.
		Select("stream_events.*").
		Joins("JOIN plannings ON plannings.id = stream_events.planning_id").
		Where("stream_events.id = ? AND plannings.user_id = ?", eventID, userID).
		First(&event).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Event not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Delete(&event).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event": event,
	})
}
