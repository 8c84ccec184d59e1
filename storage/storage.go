package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ascent-cms/models"
	"github.com/ascent-cms/utils"
)

// CacheControl is set on every stored image
const CacheControl = "max-age=3600"

// Object is an image ready to be stored
type Object struct {
	// Prefix groups objects by content type, e.g. "about" or "team"
	Prefix      string
	FileName    string
	ContentType string
	Data        []byte
}

// ObjectStorage stores images and resolves their public URLs
type ObjectStorage interface {
	// Upload stores the object under a fresh name and returns its public URL.
	// An existing object is never replaced.
	Upload(ctx context.Context, obj Object) (string, error)
	PublicURL(key string) string
}

// ObjectName derives the stored name from the prefix, upload time and file name
func ObjectName(prefix string, at time.Time, fileName string) string {
	prefix = strings.Trim(prefix, "-/ ")
	if prefix == "" {
		prefix = "upload"
	}
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), utils.SanitizeFileName(fileName))
}

func uploadError(ctx context.Context, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &models.TimeoutError{Op: "upload " + key, Err: err}
	}
	return &models.UploadError{Key: key, Err: err}
}
