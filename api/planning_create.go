package api

import (
	"net/http"
	"time"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type planningCreateBody struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (a *API) PlanningCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data planningCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title == "" || data.StartDate == "" || data.EndDate == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Title, start date and end date are required",
			"requestID": requestID,
		})
		return
	}

	start, err := parseDate(data.StartDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Start date is not a valid date",
			"requestID": requestID,
		})
		return
	}

	end, err := parseDate(data.EndDate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "End date is not a valid date",
			"requestID": requestID,
		})
		return
	}

	if !start.Before(end) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Start date must be before end date",
			"requestID": requestID,
		})
		return
	}

	planning := model.Planning{
		UserID:    userID,
		Title:     data.Title,
		StartDate: start,
		EndDate:   end,
	}

	if err := a.DB.Create(&planning).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create planning", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"planning": planning,
	})
}

// parseDate accepts the YYYY-MM-DD strings the date inputs send, plus full
// RFC3339 for clients that round-trip our own output
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}
