package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type planningUpdateBody struct {
	Title     *string `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// PlanningUpdate applies a partial update to a planning the user owns and
// stamps updated_at
func (a *API) PlanningUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	planningID := c.Param("id")

	var data planningUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

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

	updates := map[string]any{}

	if data.Title != nil {
		if *data.Title == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Title can't be empty",
				"requestID": requestID,
			})
			return
		}

		updates["title"] = *data.Title
	}

	if data.StartDate != nil {
		start, err := parseDate(*data.StartDate)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Start date is not a valid date",
				"requestID": requestID,
			})
			return
		}

		updates["start_date"] = start
	}

	if data.EndDate != nil {
		end, err := parseDate(*data.EndDate)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "End date is not a valid date",
				"requestID": requestID,
			})
			return
		}

		updates["end_date"] = end
	}

	if len(updates) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	updates["updated_at"] = time.Now()

	err = a.DB.
		Model(&planning).
		Updates(updates).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update planning", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.First(&planning, planning.ID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch updated planning", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"planning": planning,
	})
}
