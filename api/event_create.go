package api

import (
	"net/http"

	"twitchplanner/backend/model"
	"twitchplanner/backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type eventCreateBody struct {
	GameName     string  `json:"game_name"`
	StreamTitle  *string `json:"stream_title"`
	GameImageURL *string `json:"game_image_url"`
	DayOfWeek    string  `json:"day_of_week"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

func (a *API) EventCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	planningID := c.Param("id")

	var data eventCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.GameName == "" || data.DayOfWeek == "" || data.StartTime == "" || data.EndTime == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Game name, day of week, start time and end time are required",
			"requestID": requestID,
		})
		return
	}

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

	if err := validators.DayValidator(data.DayOfWeek); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	// Times are persisted in their canonical zero-padded form, the grid
	// sort depends on it
	startTime, err := validators.CanonicalClock(data.StartTime)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	endTime, err := validators.CanonicalClock(data.EndTime)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.TimeRangeValidator(startTime, endTime); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	event := model.StreamEvent{
		PlanningID:   planning.ID,
		GameName:     data.GameName,
		StreamTitle:  data.StreamTitle,
		GameImageURL: data.GameImageURL,
		DayOfWeek:    data.DayOfWeek,
		StartTime:    startTime,
		EndTime:      endTime,
	}

	if err := a.DB.Create(&event).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"event": event,
	})
}
