package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/models"
	"github.com/ascent-cms/services"
)

// ContentController handles the admin endpoints of one content type
type ContentController[T any, P models.EntityPtr[T]] struct {
	manager *services.ContentManager[T, P]
}

// NewContentController creates a new content controller
func NewContentController[T any, P models.EntityPtr[T]](manager *services.ContentManager[T, P]) *ContentController[T, P] {
	return &ContentController[T, P]{manager: manager}
}

// RegisterRoutes registers content routes under /content/<slug>
func (ctl *ContentController[T, P]) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content/" + ctl.manager.Schema().Slug)
	{
		content.GET("", ctl.List)
		content.GET("/:id", ctl.Get)
		content.POST("", ctl.Create)
		content.PUT("/:id", ctl.Update)
		content.DELETE("/:id", ctl.Delete)
	}
}

// List returns every entry; a failed read yields an empty list
func (ctl *ContentController[T, P]) List(c *gin.Context) {
	respondOK(c, ctl.manager.List(c.Request.Context()))
}

// Get returns one entry
func (ctl *ContentController[T, P]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entity, err := ctl.manager.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entity)
}

// Create handles POST with a JSON body or a multipart form
func (ctl *ContentController[T, P]) Create(c *gin.Context) {
	ctl.save(c, 0, http.StatusCreated)
}

// Update replaces the entry with the submitted form
func (ctl *ContentController[T, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctl.save(c, id, http.StatusOK)
}

func (ctl *ContentController[T, P]) save(c *gin.Context, id int64, status int) {
	sub, err := bindSubmission(c)
	if err != nil {
		respondError(c, err)
		return
	}
	sub.ID = id

	result, err := ctl.manager.Save(c.Request.Context(), sub)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(status, gin.H{
		"status": "success",
		"data": gin.H{
			"entry": result.Entity,
			"items": result.Items,
			"trace": result.Trace,
		},
	})
}

// Delete removes an entry; deleting a missing entry succeeds
func (ctl *ContentController[T, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	items, err := ctl.manager.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, &models.ValidationError{Field: "id", Message: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
