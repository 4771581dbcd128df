package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/pkg/ark"
	"github.com/chaesu44438/emotion-theater/internal/pkg/openaiimg"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// AzureImageProvider generates illustrations through Azure OpenAI image
// deployments. The service returns a download URL; the caller fetches
// the asset itself.
type AzureImageProvider struct {
	client  *openaiimg.Client
	size    string
	quality string
}

// NewAzureImageProvider creates the provider from config.
func NewAzureImageProvider(cfg *config.ImageConfig) (*AzureImageProvider, error) {
	client, err := openaiimg.NewClient(openaiimg.Config{
		Endpoint:   cfg.Endpoint,
		APIKey:     cfg.APIKey,
		APIVersion: cfg.APIVersion,
		Deployment: cfg.Deployment,
	})
	if err != nil {
		return nil, fmt.Errorf("create azure image client: %w", err)
	}
	return &AzureImageProvider{client: client, size: cfg.Size, quality: cfg.Quality}, nil
}

// Generate implements storytools.ImageGenerator.
func (p *AzureImageProvider) Generate(ctx context.Context, prompt string) (storytools.ImageResult, error) {
	url, err := p.client.Generate(ctx, prompt, p.size, p.quality)
	if err != nil {
		if errors.Is(err, openaiimg.ErrContentPolicy) {
			return storytools.ImageResult{}, fmt.Errorf("%w: %v", storytools.ErrContentPolicy, err)
		}
		return storytools.ImageResult{}, err
	}
	return storytools.ImageResult{URL: url}, nil
}

// ArkImageProvider generates illustrations through the Volcengine Ark
// runtime. The image bytes come back inline, so no download step is
// needed.
type ArkImageProvider struct {
	client *ark.ImageClient
	size   string
}

// NewArkImageProvider creates the provider from config.
func NewArkImageProvider(cfg *config.ImageConfig) (*ArkImageProvider, error) {
	client, err := ark.NewImageClient(ark.ImageConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.Endpoint,
		Model:   cfg.Deployment,
	})
	if err != nil {
		return nil, fmt.Errorf("create ark image client: %w", err)
	}
	return &ArkImageProvider{client: client, size: cfg.Size}, nil
}

// Generate implements storytools.ImageGenerator.
func (p *ArkImageProvider) Generate(ctx context.Context, prompt string) (storytools.ImageResult, error) {
	data, err := p.client.Generate(ctx, prompt, p.size)
	if err != nil {
		return storytools.ImageResult{}, fmt.Errorf("ark generate image: %w", err)
	}

	log.Debug().Int("bytes", len(data)).Msg("ark illustration generated")
	return storytools.ImageResult{Data: data}, nil
}

// NewImageGenerator selects the configured image backend.
func NewImageGenerator(cfg *config.ImageConfig) (storytools.ImageGenerator, error) {
	switch cfg.Provider {
	case "azure", "":
		return NewAzureImageProvider(cfg)
	case "ark":
		return NewArkImageProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", cfg.Provider)
	}
}
