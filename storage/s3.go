package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/models"
)

// S3Client is the subset of the S3 API used for image storage
type S3Client interface {
	HeadObjectWithContext(ctx aws.Context, input *s3.HeadObjectInput, opts ...request.Option) (*s3.HeadObjectOutput, error)
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Storage stores images in an S3 compatible bucket
type S3Storage struct {
	client  S3Client
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewS3Client creates an S3 client from the storage settings
func NewS3Client(cfg config.StorageConfig) (*s3.S3, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return s3.New(sess), nil
}

// NewS3Storage creates a storage backed by client. Public URLs use the configured
// base URL, falling back to the bucket's virtual-hosted or path-style address.
func NewS3Storage(client S3Client, cfg config.StorageConfig) *S3Storage {
	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		now:     time.Now,
	}
}

func publicBaseURL(cfg config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	if cfg.ForcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s", cfg.Region, cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Upload checks that the name is free, then writes the object
func (s *S3Storage) Upload(ctx context.Context, obj Object) (string, error) {
	key := ObjectName(obj.Prefix, s.now(), obj.FileName)

	exists, err := s.exists(ctx, key)
	if err != nil {
		return "", uploadError(ctx, key, err)
	}
	if exists {
		return "", &models.UploadError{Key: key, Err: models.ErrObjectExists}
	}
	// HeadObject then PutObject is not atomic and the v1 SDK has no If-None-Match on
	// PutObjectInput. The millisecond timestamp in the key keeps the window to writers
	// racing on the same file name within one millisecond.

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(obj.Data),
		ContentType:   aws.String(obj.ContentType),
		ContentLength: aws.Int64(int64(len(obj.Data))),
		CacheControl:  aws.String(CacheControl),
	})
	if err != nil {
		return "", uploadError(ctx, key, err)
	}
	return s.PublicURL(key), nil
}

func (s *S3Storage) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	var aerr awserr.Error
	if errors.As(err, &aerr) && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
		return false, nil
	}
	return false, err
}

// PublicURL resolves the public address of a stored key
func (s *S3Storage) PublicURL(key string) string {
	return s.baseURL + "/" + url.PathEscape(key)
}
