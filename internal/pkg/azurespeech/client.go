package azurespeech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultOutputFormat is a high-quality mono MP3 stream.
const DefaultOutputFormat = "audio-24khz-160kbitrate-mono-mp3"

// Config Azure Speech settings.
type Config struct {
	Region       string // e.g. koreacentral
	Key          string
	OutputFormat string // Azure output format name
}

// Client calls the Azure Speech REST synthesis endpoint with SSML documents.
type Client struct {
	endpoint     string
	key          string
	outputFormat string
	httpClient   *http.Client
}

// NewClient creates a speech-synthesis client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Region == "" || cfg.Key == "" {
		return nil, fmt.Errorf("speech region and key are required")
	}

	outputFormat := cfg.OutputFormat
	if outputFormat == "" {
		outputFormat = DefaultOutputFormat
	}

	return &Client{
		endpoint:     fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region),
		key:          cfg.Key,
		outputFormat: outputFormat,
		httpClient: &http.Client{
			// long scenes can take a while to synthesize
			Timeout: 3 * time.Minute,
		},
	}, nil
}

// Synthesize renders an SSML document to audio bytes. Synthesis failures
// carry the service's diagnostic detail in the error message.
func (c *Client) Synthesize(ctx context.Context, ssml string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", c.outputFormat)
	req.Header.Set("User-Agent", "emotion-theater")

	log.Debug().
		Int("ssml_len", len(ssml)).
		Str("format", c.outputFormat).
		Msg("sending speech synthesis request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech synthesis failed: status %d, detail: %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("speech synthesis returned empty audio")
	}

	return body, nil
}
