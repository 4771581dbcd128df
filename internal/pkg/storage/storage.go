package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the blob-storage interface used for uploaded reference images.
type Storage interface {
	// Upload stores data under key and returns a URL for later access.
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)

	// Download opens the stored object.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// GetDownloadURL returns a URL a client can fetch the object from.
	GetDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Type returns the backend type name.
	Type() string
}

// Backend type names.
const (
	TypeLocal = "local"
	TypeOSS   = "oss"
)
