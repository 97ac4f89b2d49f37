package api

import (
	"net/http"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanningList returns every planning of the logged in user, most recent
// schedule first
func (a *API) PlanningList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	plannings := []model.Planning{}

	err := a.DB.
		Where("user_id = ?", userID).
		Order("start_date desc").
		Find(&plannings).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list plannings", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plannings": plannings,
	})
}
