package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateAdminKey creates a random URL-safe admin key of the requested length
func GenerateAdminKey(length int) (string, error) {
	// Ensure minimum length
	if length < 16 {
		length = 16
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	key := base64.RawURLEncoding.EncodeToString(b)
	return key[:length], nil
}
