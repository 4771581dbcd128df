package story

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/model"
	storymodel "github.com/chaesu44438/emotion-theater/internal/model/story"
	"github.com/chaesu44438/emotion-theater/internal/pkg/ctxutil"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// Save stores a generated story for the current user
// @Summary      Save a story
// @Description  Persists a generated story under the authenticated account
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      model.SaveStoryRequest  true  "save request"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/stories [post]
func (h *Handler) Save(c *gin.Context) {
	var req model.SaveStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "Unauthorized",
		})
		return
	}

	item := &storymodel.Story{
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
		Profile: storytools.StoryProfile{
			Name:              req.Name,
			AgeYears:          req.AgeYears,
			Gender:            req.Gender,
			Category:          req.Category,
			EmotionID:         req.Emotion,
			Comment:           req.Comment,
			ReferenceImageURL: req.ReferenceImageURL,
		},
		IllustrationURL: req.IllustrationURL,
	}

	saved, err := h.storyService.Save(ctx, userID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to save story",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "saved",
		"data":    toStoryInfo(saved),
	})
}
