package services

import (
	"path/filepath"
	"strings"
)

// jpegName swaps the extension of a file name for .jpg
func jpegName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = "image"
	}
	return stem + ".jpg"
}
