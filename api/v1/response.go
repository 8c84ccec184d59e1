package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/models"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondError maps the content error taxonomy onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		cropErr       *models.CropError
		notFoundErr   *models.NotFoundError
		uploadErr     *models.UploadError
		timeoutErr    *models.TimeoutError
	)

	status := http.StatusInternalServerError
	body := gin.H{"status": "error", "message": err.Error()}

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		body["field"] = validationErr.Field
	case errors.As(err, &cropErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &timeoutErr):
		status = http.StatusGatewayTimeout
	case errors.As(err, &uploadErr):
		status = http.StatusBadGateway
	}

	_ = c.Error(err)
	c.JSON(status, body)
}
