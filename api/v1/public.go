package v1

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/mirror"
	"github.com/ascent-cms/services"
	"github.com/ascent-cms/utils"
)

// keepAliveInterval is how often an idle stream sends a comment line
const keepAliveInterval = 25 * time.Second

// PublicController serves the landing page from the mirror
type PublicController struct {
	mirror   *mirror.Mirror
	settings *services.SettingsService
}

// NewPublicController creates a new public controller
func NewPublicController(m *mirror.Mirror, settings *services.SettingsService) *PublicController {
	return &PublicController{mirror: m, settings: settings}
}

// RegisterRoutes registers public routes
func (ctl *PublicController) RegisterRoutes(router *gin.RouterGroup) {
	public := router.Group("/public")
	{
		public.GET("/content/:collection", ctl.GetCollection)
		public.GET("/services/status", ctl.GetServiceStatuses)
		public.GET("/stream", ctl.Stream)
	}
}

// GetCollection returns the mirror snapshot of a collection
func (ctl *PublicController) GetCollection(c *gin.Context) {
	snap, ok := ctl.mirror.Snapshot(c.Param("collection"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Unknown collection",
		})
		return
	}
	respondOK(c, snap)
}

// GetServiceStatuses returns the coming-soon flag of every service
func (ctl *PublicController) GetServiceStatuses(c *gin.Context) {
	statuses, err := ctl.settings.ServiceStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statuses)
}

// Stream notifies the landing page whenever a collection is refreshed
func (ctl *PublicController) Stream(c *gin.Context) {
	// Set headers for streaming
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	refreshed, stop := ctl.mirror.Watch()
	defer stop()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Status(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case collection, ok := <-refreshed:
			if !ok {
				return false
			}
			if err := utils.WriteSSEEvent(w, "refresh", gin.H{"collection": collection}); err != nil {
				return false
			}
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": keep-alive\n\n")
			return err == nil
		}
	})
}
