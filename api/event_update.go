package api

import (
	"errors"
	"net/http"

	"twitchplanner/backend/model"
	"twitchplanner/backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type eventUpdateBody struct {
	GameName     *string `json:"game_name"`
	StreamTitle  *string `json:"stream_title"`
	GameImageURL *string `json:"game_image_url"`
	DayOfWeek    *string `json:"day_of_week"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

// EventUpdate applies a partial update to an event. Ownership is resolved by
// joining through the parent planning, there is no separate authorization
// step to leak existence through
func (a *API) EventUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	eventID := c.Param("id")

	var data eventUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

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

	updates := map[string]any{}

	if data.GameName != nil {
		if *data.GameName == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Game name can't be empty",
				"requestID": requestID,
			})
			return
		}

		updates["game_name"] = *data.GameName
	}

	if data.StreamTitle != nil {
		updates["stream_title"] = *data.StreamTitle
	}

	if data.GameImageURL != nil {
		updates["game_image_url"] = *data.GameImageURL
	}

	if data.DayOfWeek != nil {
		if err := validators.DayValidator(*data.DayOfWeek); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		updates["day_of_week"] = *data.DayOfWeek
	}

	// The resulting pair must still be a valid range, so an absent bound is
	// checked against the stored one. Incoming times are canonicalized to
	// the zero-padded form the grid sort depends on
	start := event.StartTime
	end := event.EndTime

	if data.StartTime != nil {
		s, err := validators.CanonicalClock(*data.StartTime)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		start = s
		updates["start_time"] = s
	}

	if data.EndTime != nil {
		e, err := validators.CanonicalClock(*data.EndTime)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		end = e
		updates["end_time"] = e
	}

	if data.StartTime != nil || data.EndTime != nil {
		if err := validators.TimeRangeValidator(start, end); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if len(updates) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	err = a.DB.
		Model(&event).
		Updates(updates).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.First(&event, event.ID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch updated event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event": event,
	})
}
