package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/models"
	"github.com/ascent-cms/services"
)

// DashboardController serves the admin overview
type DashboardController struct {
	dashboard *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// RegisterRoutes registers dashboard routes
func (ctl *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", ctl.GetDashboard)
	router.GET("/schemas", ctl.ListSchemas)
}

// GetDashboard returns the number of entries per collection
func (ctl *DashboardController) GetDashboard(c *gin.Context) {
	respondOK(c, gin.H{"counts": ctl.dashboard.Counts(c.Request.Context())})
}

// ListSchemas returns the form descriptor of every content type
func (ctl *DashboardController) ListSchemas(c *gin.Context) {
	respondOK(c, models.Schemas())
}
