package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
)

// LocalStorage stores objects on the local filesystem under a base path.
type LocalStorage struct {
	basePath string
	baseURL  string // prefix for generated access URLs
}

// NewLocalStorage creates a filesystem-backed storage rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create base path: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload writes the object to disk and returns its access URL.
func (s *LocalStorage) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	fullPath := filepath.Join(s.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.fileURL(key), nil
}

// Download opens the stored object.
func (s *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.basePath, key)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", key)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}

	return file, nil
}

// GetDownloadURL returns the static access URL; local files are served by the app itself.
func (s *LocalStorage) GetDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return s.fileURL(key), nil
}

// Delete removes the object. A missing object is treated as already deleted.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.basePath, key)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Exists reports whether the object is present.
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Type returns the backend type name.
func (s *LocalStorage) Type() string {
	return storage.TypeLocal
}

func (s *LocalStorage) fileURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
