package story

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/model"
)

// Translate renders a story into another language
// @Summary      Translate a story
// @Description  Translates a scripted story into the target language, keeping the speaker format
// @Tags         stories
// @Accept       json
// @Produce      json
// @Param        request  body      model.TranslateStoryRequest  true  "translation request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/stories/translate [post]
func (h *Handler) Translate(c *gin.Context) {
	var req model.TranslateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	translated, err := h.storyService.Translate(ctx, req.Text, req.TargetLanguage)
	if err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001
		if strings.Contains(err.Error(), "unsupported target language") {
			code = http.StatusBadRequest
			errorCode = 40002
		}

		c.JSON(code, ErrorResponse{
			Code:    errorCode,
			Message: "Translation failed",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": model.TranslateStoryResponse{
			Text:           translated,
			TargetLanguage: req.TargetLanguage,
		},
	})
}
