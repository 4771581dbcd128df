package tts

import (
	httputil "github.com/chaesu44438/emotion-theater/internal/pkg/http"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// ErrorResponse error body shared by all tts endpoints.
type ErrorResponse = httputil.ErrorResponse

// Handler exposes standalone speech synthesis, for narrated story
// playback without the video pipeline.
type Handler struct {
	speech storytools.SpeechSynthesizer
}

// NewHandler creates the tts handler.
func NewHandler(speech storytools.SpeechSynthesizer) *Handler {
	return &Handler{
		speech: speech,
	}
}
