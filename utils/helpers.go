package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFileName makes an uploaded file name safe to use inside an object key.
// The extension is kept; everything else outside [a-z0-9-_.] collapses to hyphens.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(name))
	stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))

	var result strings.Builder
	lastHyphen := false
	for _, char := range stem {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '_' {
			result.WriteRune(char)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			result.WriteRune('-')
			lastHyphen = true
		}
	}

	// Ensure it doesn't start or end with hyphen
	finalName := strings.Trim(result.String(), "-")
	if finalName == "" || finalName == "." {
		finalName = "image"
	}

	var cleanExt strings.Builder
	for _, char := range ext {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '.' {
			cleanExt.WriteRune(char)
		}
	}
	if cleanExt.Len() > 1 {
		return finalName + cleanExt.String()
	}
	return finalName
}
