package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/imaging"
	"github.com/ascent-cms/models"
)

// CropPreview crops the posted image and returns the JPEG, so the admin can
// check the region before saving
func CropPreview(c *gin.Context) {
	sub, err := bindSubmission(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if sub.Image == nil {
		respondError(c, &models.ValidationError{Field: "image", Message: "is required"})
		return
	}

	out, err := imaging.Crop(sub.Image.Data, sub.Crop)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, imaging.ContentType, out)
}
