package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/middleware"
	"github.com/ascent-cms/mirror"
	"github.com/ascent-cms/services"
)

// Dependencies are the services behind the v1 API
type Dependencies struct {
	Auth         *services.AuthService
	Content      *services.Content
	Settings     *services.SettingsService
	Dashboard    *services.DashboardService
	Mirror       *mirror.Mirror
	CookieSecure bool
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	NewAuthController(deps.Auth, deps.CookieSecure).RegisterRoutes(router)
	NewPublicController(deps.Mirror, deps.Settings).RegisterRoutes(router)

	// Admin endpoints - protected by AuthMiddleware and AdminMiddleware
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Auth), middleware.AdminMiddleware())
	{
		NewDashboardController(deps.Dashboard).RegisterRoutes(admin)
		NewSettingsController(deps.Settings).RegisterRoutes(admin)
		admin.POST("/crop", CropPreview)

		content := deps.Content
		NewContentController(content.Milestones).RegisterRoutes(admin)
		NewContentController(content.HeroStats).RegisterRoutes(admin)
		NewContentController(content.Clients).RegisterRoutes(admin)
		NewContentController(content.PricingPackages).RegisterRoutes(admin)
		NewContentController(content.TeamMembers).RegisterRoutes(admin)
		NewContentController(content.Partnerships).RegisterRoutes(admin)
		NewContentController(content.ContactInfos).RegisterRoutes(admin)
	}
}
