package v1

import (
	"github.com/gin-gonic/gin"
)

// Version of the content service
const Version = "1.0.0"

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ascent-cms",
		"version": Version,
	})
}
