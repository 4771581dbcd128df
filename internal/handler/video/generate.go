package video

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chaesu44438/emotion-theater/internal/model"
)

// Generate accepts a story for asynchronous video rendering
// @Summary      Start a video job
// @Description  Queues the story for narrated-video rendering and returns the job ID to poll
// @Tags         video
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateVideoRequest  true  "video request"
// @Success      202      {object}  model.GenerateVideoResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/video/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req model.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if req.UserData.Name == "" || req.UserData.Emotion == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40002,
			Message: "userData.name and userData.emotion are required",
		})
		return
	}

	language := req.UserData.Language
	if language == "" {
		language = "ko"
	}

	jobID, err := h.videoService.Generate(req.Story, req.UserData.Profile(), language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to start video job",
			Detail:  err.Error(),
		})
		return
	}

	// best effort: the job is already running, a broken link must not
	// fail the acceptance
	if req.StoryID != "" && h.storyService != nil {
		if err := h.storyService.AttachVideo(c.Request.Context(), req.StoryID, jobID); err != nil {
			log.Warn().Str("story", req.StoryID).Str("job", jobID).Err(err).Msg("failed to link video job to story")
		}
	}

	c.JSON(http.StatusAccepted, model.GenerateVideoResponse{
		Success: true,
		Message: "video generation started",
		VideoID: jobID,
	})
}
