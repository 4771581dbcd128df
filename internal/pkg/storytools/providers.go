package storytools

import (
	"context"
	"errors"
)

// ErrContentPolicy marks an image-generation rejection that should be
// retried once with SafeFallbackPrompt. Check with errors.Is.
var ErrContentPolicy = errors.New("content policy violation")

// GenerateOptions model sampling parameters for a single call.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// TextGenerator generates text from prompts. Injected by the caller so
// tests can substitute stub implementations.
type TextGenerator interface {
	// Generate produces text from a system prompt and a user prompt.
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error)

	// GenerateWithImage is Generate with a reference image attached to the
	// user prompt at reduced detail, for vision-conditioned prompting.
	GenerateWithImage(ctx context.Context, systemPrompt, userPrompt, imageURL string, opts GenerateOptions) (string, error)
}

// ImageResult is one generated image. Exactly one of URL and Data is set:
// URL-returning backends leave Data nil and the caller downloads the
// asset; inline backends return the bytes directly.
type ImageResult struct {
	URL  string
	Data []byte
}

// ImageGenerator generates one illustration per prompt. A rejection for
// content-safety reasons must be returned wrapped with ErrContentPolicy.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (ImageResult, error)
}

// SpeechSynthesizer renders a markup document to audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, ssml string) ([]byte, error)
}
