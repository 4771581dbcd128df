package story

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/model"
)

// Generate writes a scripted fairy tale for the given child profile
// @Summary      Generate a story
// @Description  Produces a multi-speaker scripted fairy tale and a title illustration for the profile
// @Tags         stories
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateStoryRequest  true  "story request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/stories/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req model.GenerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	result, err := h.storyService.Generate(ctx, req.Profile())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Story generation failed",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": model.GenerateStoryResponse{
			Story:           result.Story,
			IllustrationURL: result.IllustrationURL,
			Retried:         result.Retried,
		},
	})
}

// RegenerateIllustration draws a new title illustration for a profile
// @Summary      Regenerate the illustration
// @Description  Produces a fresh title illustration without rewriting the story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateStoryRequest  true  "story request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/stories/regenerate-illustration [post]
func (h *Handler) RegenerateIllustration(c *gin.Context) {
	var req model.GenerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	illustrationURL, err := h.storyService.RegeneratePrompt(ctx, req.Profile())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Illustration generation failed",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"illustrationUrl": illustrationURL,
		},
	})
}
