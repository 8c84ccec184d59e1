package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-cms/models"
)

// samplePNG renders a w x h gradient used as a test upload
func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCrop_Dimensions(t *testing.T) {
	src := samplePNG(t, 300, 200)

	tests := []Rect{
		{X: 10, Y: 10, Width: 100, Height: 100},
		{X: 0, Y: 0, Width: 300, Height: 200},
		{X: 299, Y: 199, Width: 1, Height: 1},
	}
	for _, rect := range tests {
		out, err := Crop(src, &rect)
		require.NoError(t, err)

		w, h, err := Dimensions(out)
		require.NoError(t, err)
		assert.Equal(t, rect.Width, w)
		assert.Equal(t, rect.Height, h)

		_, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	}
}

func TestCrop_Deterministic(t *testing.T) {
	src := samplePNG(t, 120, 80)
	rect := &Rect{X: 5, Y: 7, Width: 50, Height: 40}

	first, err := Crop(src, rect)
	require.NoError(t, err)
	second, err := Crop(src, rect)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCrop_Failures(t *testing.T) {
	src := samplePNG(t, 100, 100)

	tests := []struct {
		name string
		src  []byte
		rect *Rect
	}{
		{"no rectangle", src, nil},
		{"zero width", src, &Rect{Width: 0, Height: 10}},
		{"negative height", src, &Rect{Width: 10, Height: -1}},
		{"outside bounds", src, &Rect{X: 50, Y: 50, Width: 60, Height: 10}},
		{"negative origin", src, &Rect{X: -1, Y: 0, Width: 10, Height: 10}},
		{"undecodable source", []byte("not an image"), &Rect{Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Crop(tt.src, tt.rect)
			assert.Nil(t, out)
			var cropErr *models.CropError
			assert.ErrorAs(t, err, &cropErr)
		})
	}
}

func TestDimensions_Invalid(t *testing.T) {
	_, _, err := Dimensions([]byte{0x00, 0x01})
	assert.Error(t, err)
}

// oversizedPNG is a small valid PNG whose header claims w x h pixels
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := samplePNG(t, 1, 1)
	// IHDR follows the 8 byte signature: length, type, 13 bytes of data, crc
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestCrop_RejectsOversizedSource(t *testing.T) {
	src := oversizedPNG(t, 40000, 40000)

	w, h, err := Dimensions(src)
	require.NoError(t, err)
	require.Equal(t, 40000, w)
	require.Equal(t, 40000, h)

	_, err = Crop(src, &Rect{Width: 10, Height: 10})
	var cropErr *models.CropError
	require.ErrorAs(t, err, &cropErr)
	assert.Contains(t, cropErr.Error(), "exceeds")
}
