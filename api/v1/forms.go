package v1

import (
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ascent-cms/imaging"
	"github.com/ascent-cms/models"
	"github.com/ascent-cms/services"
	"github.com/ascent-cms/utils"
)

// MaxImageBytes bounds a single uploaded image
const MaxImageBytes = 10 << 20

var cropFields = []string{"crop_x", "crop_y", "crop_width", "crop_height"}

// bindSubmission reads a JSON body or a multipart form into a submission
func bindSubmission(c *gin.Context) (services.Submission, error) {
	var sub services.Submission

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fields := map[string]interface{}{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			return sub, &models.ValidationError{Field: "body", Message: "must be a JSON object"}
		}
		sub.Fields = fields
		return sub, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return sub, &models.ValidationError{Field: "body", Message: "must be a multipart form"}
	}

	sub.Fields = make(map[string]interface{}, len(form.Value))
	for key, values := range form.Value {
		if isCropField(key) {
			continue
		}
		if len(values) == 1 {
			sub.Fields[key] = values[0]
		} else {
			sub.Fields[key] = values
		}
	}

	if files := form.File["image"]; len(files) > 0 {
		upload, err := readUpload(files[0])
		if err != nil {
			return sub, err
		}
		sub.Image = upload
	}

	rect, err := cropRect(form.Value)
	if err != nil {
		return sub, err
	}
	sub.Crop = rect
	return sub, nil
}

func isCropField(key string) bool {
	for _, f := range cropFields {
		if f == key {
			return true
		}
	}
	return false
}

func readUpload(fh *multipart.FileHeader) (*services.Upload, error) {
	if fh.Size > MaxImageBytes {
		return nil, &models.ValidationError{Field: "image", Message: "must be at most " + utils.FormatBytes(MaxImageBytes)}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, &models.ValidationError{Field: "image", Message: "must be at most " + utils.FormatBytes(MaxImageBytes)}
	}
	return &services.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// cropRect returns nil when the form carries no crop fields
func cropRect(values map[string][]string) (*imaging.Rect, error) {
	present := false
	for _, f := range cropFields {
		if v := values[f]; len(v) > 0 && strings.TrimSpace(v[0]) != "" {
			present = true
		}
	}
	if !present {
		return nil, nil
	}

	parsed := make([]int, len(cropFields))
	for i, f := range cropFields {
		raw := ""
		if v := values[f]; len(v) > 0 {
			raw = strings.TrimSpace(v[0])
		}
		if raw == "" {
			return nil, &models.ValidationError{Field: f, Message: "is required when cropping"}
		}
		// crop selections arrive from the browser as fractional pixels
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &models.ValidationError{Field: f, Message: "must be a number"}
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &models.ValidationError{Field: f, Message: "must be a finite number"}
		}
		parsed[i] = int(math.Round(n))
	}
	return &imaging.Rect{X: parsed[0], Y: parsed[1], Width: parsed[2], Height: parsed[3]}, nil
}
