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

type userUpdateBody struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	DisplayName *string `json:"display_name"`
	TwitchURL   *string `json:"twitch_url"`
	LogoURL     *string `json:"logo_url"`
}

// UserUpdate applies a partial profile update. Only fields present in the
// body are touched, a present password is re-hashed before it's stored
func (a *API) UserUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data userUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Email != nil {
		if err := validators.EmailValidator(*data.Email); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		updates["email"] = *data.Email
	}

	if data.Password != nil {
		if err := validators.PasswordValidator(*data.Password); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		hash, err := a.Hasher.GenerateFromPassword(*data.Password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		updates["password_hash"] = hash
	}

	if data.DisplayName != nil {
		updates["display_name"] = *data.DisplayName
	}

	if data.TwitchURL != nil {
		updates["twitch_url"] = *data.TwitchURL
	}

	if data.LogoURL != nil {
		updates["logo_url"] = *data.LogoURL
	}

	if len(updates) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Error
	if err != nil {
		// Someone else already holds the new email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":     "This email is already used by another account",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch updated user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
