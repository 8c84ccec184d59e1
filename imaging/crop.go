package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"time"

	// decoders for accepted uploads
	_ "image/gif"
	_ "image/png"

	"github.com/ascent-cms/metrics"
	"github.com/ascent-cms/models"
)

// Quality is the fixed JPEG quality of every crop
const Quality = 92

// ContentType of every crop
const ContentType = "image/jpeg"

// MaxPixels bounds the decoded size of a source image
const MaxPixels = 40_000_000

// Rect is a crop region in source pixel coordinates
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Crop cuts rect out of src and re-encodes it as JPEG.
// The same source and rect always yield the same bytes.
func Crop(src []byte, rect *Rect) ([]byte, error) {
	start := time.Now()
	defer func() { metrics.RecordCrop(time.Since(start)) }()

	if rect == nil {
		return nil, &models.CropError{Reason: "no crop rectangle supplied"}
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, &models.CropError{Reason: fmt.Sprintf("invalid crop size %dx%d", rect.Width, rect.Height)}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, &models.CropError{Reason: "source image could not be decoded", Err: err}
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, &models.CropError{Reason: fmt.Sprintf("source image %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels)}
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, &models.CropError{Reason: "source image could not be decoded", Err: err}
	}

	region := rect.bounds().Add(img.Bounds().Min)
	if !region.In(img.Bounds()) {
		b := img.Bounds()
		return nil, &models.CropError{Reason: fmt.Sprintf("crop %v outside image %dx%d", rect.bounds(), b.Dx(), b.Dy())}
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Width, rect.Height))
	draw.Draw(dst, dst.Bounds(), img, region.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, &models.CropError{Reason: "failed to encode crop", Err: err}
	}
	return buf.Bytes(), nil
}

// Dimensions reads the width and height of an encoded image
func Dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
