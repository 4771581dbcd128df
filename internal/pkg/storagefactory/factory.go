package storagefactory

import (
	"fmt"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage/local"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage/oss"
)

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg *config.StorageConfig) (storage.Storage, error) {
	switch cfg.Type {
	case storage.TypeLocal, "":
		if cfg.Local == nil {
			return nil, fmt.Errorf("local storage config is required")
		}
		return local.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	case storage.TypeOSS:
		if cfg.OSS == nil {
			return nil, fmt.Errorf("OSS storage config is required")
		}
		return oss.NewOSSStorage(
			cfg.OSS.Endpoint,
			cfg.OSS.Bucket,
			cfg.OSS.AccessKeyID,
			cfg.OSS.AccessKeySecret,
			cfg.OSS.PresignExpiry,
		)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
