package oss

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
)

// OSSStorage stores objects in an Aliyun OSS bucket.
type OSSStorage struct {
	bucket        *oss.Bucket
	bucketName    string
	presignExpiry int // seconds
}

// NewOSSStorage creates an OSS-backed storage.
func NewOSSStorage(endpoint, bucketName, accessKeyID, accessKeySecret string, presignExpiry int) (*OSSStorage, error) {
	client, err := oss.New(endpoint, accessKeyID, accessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("create OSS client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("get bucket: %w", err)
	}

	return &OSSStorage{
		bucket:        bucket,
		bucketName:    bucketName,
		presignExpiry: presignExpiry,
	}, nil
}

// Upload puts the object and returns its public URL.
func (s *OSSStorage) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	options := []oss.Option{
		oss.ContentType(contentType),
	}

	if err := s.bucket.PutObject(key, data, options...); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	url := fmt.Sprintf("https://%s.%s/%s", s.bucketName, s.bucket.Client.Config.Endpoint, key)
	return url, nil
}

// Download opens the stored object.
func (s *OSSStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	body, err := s.bucket.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	return body, nil
}

// GetDownloadURL returns a presigned download URL.
func (s *OSSStorage) GetDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	expiry := expiresIn
	if configured := time.Duration(s.presignExpiry) * time.Second; configured > 0 && configured < expiresIn {
		expiry = configured
	}

	url, err := s.bucket.SignURL(key, oss.HTTPGet, int64(expiry.Seconds()))
	if err != nil {
		return "", fmt.Errorf("presign download URL: %w", err)
	}

	return url, nil
}

// Delete removes the object.
func (s *OSSStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Exists reports whether the object is present.
func (s *OSSStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.IsObjectExist(key)
	if err != nil {
		return false, fmt.Errorf("check file existence: %w", err)
	}
	return exists, nil
}

// Type returns the backend type name.
func (s *OSSStorage) Type() string {
	return storage.TypeOSS
}
