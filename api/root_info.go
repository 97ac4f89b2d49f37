package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (a *API) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "TwitchPlanner API online",
		"version": version,
	})
}
