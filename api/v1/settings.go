package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/dto"
	"github.com/ascent-cms/services"
)

// SettingsController handles the service status toggles
type SettingsController struct {
	settings *services.SettingsService
}

// NewSettingsController creates a new settings controller
func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// RegisterRoutes registers settings routes
func (ctl *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/services", ctl.GetServiceStatuses)
		settings.PUT("/services", ctl.UpdateServiceStatus)
	}
}

// GetServiceStatuses returns every service with its coming-soon flag
func (ctl *SettingsController) GetServiceStatuses(c *gin.Context) {
	statuses, err := ctl.settings.ServiceStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statuses)
}

// UpdateServiceStatus sets the flag of one service; without coming_soon the flag is toggled
func (ctl *SettingsController) UpdateServiceStatus(c *gin.Context) {
	var req dto.ServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
		})
		return
	}

	var err error
	var statuses map[string]bool
	if req.ComingSoon == nil {
		statuses, err = ctl.settings.Toggle(c.Request.Context(), req.Name)
	} else {
		statuses, err = ctl.settings.SetComingSoon(c.Request.Context(), req.Name, *req.ComingSoon)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statuses)
}
