package providers

import (
	"context"
	"fmt"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/pkg/azurespeech"
)

// AzureSpeechProvider adapts the Azure Speech REST client to the
// storytools SpeechSynthesizer interface.
type AzureSpeechProvider struct {
	client *azurespeech.Client
}

// NewAzureSpeechProvider creates the provider from config.
func NewAzureSpeechProvider(cfg *config.SpeechConfig) (*AzureSpeechProvider, error) {
	client, err := azurespeech.NewClient(azurespeech.Config{
		Region:       cfg.Region,
		Key:          cfg.Key,
		OutputFormat: cfg.OutputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("create azure speech client: %w", err)
	}
	return &AzureSpeechProvider{client: client}, nil
}

// Synthesize renders an SSML document to audio bytes.
func (p *AzureSpeechProvider) Synthesize(ctx context.Context, ssml string) ([]byte, error) {
	return p.client.Synthesize(ctx, ssml)
}
