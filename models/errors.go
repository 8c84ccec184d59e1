package models

import (
	"errors"
	"fmt"
)

// ErrObjectExists is wrapped by UploadError when the target object name is already taken
var ErrObjectExists = errors.New("object already exists")

// FetchError reports a failed list or read of a collection
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// WriteError reports an insert or update rejected by the backend
type WriteError struct {
	Collection string
	Op         string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// NotFoundError reports an update or read target that does not exist
type NotFoundError struct {
	Collection string
	ID         int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Collection, e.ID)
}

// UploadError reports a failed object storage write
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// CropError reports an invalid crop rectangle or an undecodable source image
type CropError struct {
	Reason string
	Err    error
}

func (e *CropError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crop failed: %s: %v", e.Reason, e.Err)
	}
	return "crop failed: " + e.Reason
}

func (e *CropError) Unwrap() error { return e.Err }

// TimeoutError reports a network call that ran past its deadline
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ValidationError reports a submission rejected before any write was attempted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsNotFound reports whether err is or wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
