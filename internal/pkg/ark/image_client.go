package ark

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
)

// ImageConfig Ark image-generation settings.
type ImageConfig struct {
	APIKey  string // required
	BaseURL string // optional, defaults to the public Ark endpoint
	Model   string // image model name
}

// ImageClient generates illustrations through the Volcengine Ark runtime.
// Alternative to the Azure OpenAI image backend; returns the image payload
// inline (b64) instead of a downloadable URL.
type ImageClient struct {
	client *arkruntime.Client
	model  string
}

// NewImageClient creates an Ark image client.
func NewImageClient(cfg ImageConfig) (*ImageClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ark api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ark image model is required")
	}

	var opts []arkruntime.ConfigOption
	if cfg.BaseURL != "" {
		opts = append(opts, arkruntime.WithBaseUrl(cfg.BaseURL))
	}

	return &ImageClient{
		client: arkruntime.NewClientWithApiKey(cfg.APIKey, opts...),
		model:  cfg.Model,
	}, nil
}

// Generate produces one image and returns the decoded bytes.
func (c *ImageClient) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	if size == "" {
		size = "1792x1024"
	}

	responseFormat := "b64_json"
	watermark := false

	input := model.GenerateImagesRequest{
		Model:          c.model,
		Prompt:         prompt,
		Size:           &size,
		ResponseFormat: &responseFormat,
		Watermark:      &watermark,
	}

	output, err := c.client.GenerateImages(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ark GenerateImages call failed: %w", err)
	}

	if len(output.Data) == 0 || output.Data[0].B64Json == nil {
		return nil, fmt.Errorf("no image data in ark response")
	}

	imageData, err := base64.StdEncoding.DecodeString(*output.Data[0].B64Json)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}

	log.Debug().Int("size", len(imageData)).Msg("ark image generated")

	return imageData, nil
}
