package tts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chaesu44438/emotion-theater/internal/model"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// Synthesize renders a story to narrated audio
// @Summary      Synthesize story narration
// @Description  Builds the multi-voice markup for the text and returns the synthesized MP3 audio
// @Tags         tts
// @Accept       json
// @Produce      audio/mpeg
// @Param        request  body  model.SynthesizeSpeechRequest  true  "text to narrate"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/tts/synthesize [post]
func (h *Handler) Synthesize(c *gin.Context) {
	var req model.SynthesizeSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	language := req.Language
	if language == "" {
		language = "ko"
	}

	ssml := storytools.NewSSMLBuilder(language, req.Name, req.Voice).Build(req.Text)
	audio, err := h.speech.Synthesize(c.Request.Context(), ssml)
	if err != nil {
		log.Error().Err(err).Msg("speech synthesis failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to synthesize speech",
			Detail:  err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
