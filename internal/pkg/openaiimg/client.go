package openaiimg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrContentPolicy marks a prompt rejected by the image service's content
// filter. Callers are expected to retry once with a safe fallback prompt.
var ErrContentPolicy = errors.New("image prompt rejected by content policy")

const contentPolicyCode = "content_policy_violation"

// Config Azure OpenAI image-generation settings.
type Config struct {
	Endpoint   string // e.g. https://myresource.openai.azure.com
	APIKey     string
	APIVersion string // e.g. 2024-02-01
	Deployment string // DALL-E deployment name
}

// Client calls the Azure OpenAI image-generation REST API.
type Client struct {
	endpoint   string
	apiKey     string
	apiVersion string
	deployment string
	httpClient *http.Client
}

// NewClient creates an image-generation client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("image endpoint, api key and deployment are required")
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-02-01"
	}

	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: apiVersion,
		deployment: cfg.Deployment,
		httpClient: &http.Client{
			// image generation routinely takes over a minute
			Timeout: 3 * time.Minute,
		},
	}, nil
}

type generateRequest struct {
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

type generateResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Generate requests one image and returns the asset URL. A content-filter
// rejection is reported as ErrContentPolicy so callers can distinguish it
// from transport failures.
func (c *Client) Generate(ctx context.Context, prompt, size, quality string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Prompt:  prompt,
		N:       1,
		Size:    size,
		Quality: quality,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/images/generations?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	log.Debug().
		Str("deployment", c.deployment).
		Str("size", size).
		Msg("sending image generation request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}

	if parsed.Error != nil {
		if parsed.Error.Code == contentPolicyCode {
			return "", fmt.Errorf("%w: %s", ErrContentPolicy, parsed.Error.Message)
		}
		return "", fmt.Errorf("image API error: %s (code: %s)", parsed.Error.Message, parsed.Error.Code)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image API request failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", fmt.Errorf("no image URL in response")
	}

	return parsed.Data[0].URL, nil
}
