package story

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/pkg/ctxutil"
)

// List returns the current user's stories
// @Summary      List stories
// @Description  Returns the authenticated account's saved stories, newest first
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/stories [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "Unauthorized",
		})
		return
	}

	items, err := h.storyService.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to list stories",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"stories": toStoryInfoList(items),
			"total":   len(items),
		},
	})
}
