package story

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/pkg/ctxutil"
	"github.com/chaesu44438/emotion-theater/internal/service"
)

// Delete removes one of the current user's stories
// @Summary      Delete a story
// @Description  Deletes a saved story owned by the authenticated account
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "story ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/stories/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "Unauthorized",
		})
		return
	}

	storyID := c.Param("id")
	if err := h.storyService.Delete(ctx, userID, storyID); err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    40401,
				Message: "Story not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to delete story",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "deleted",
	})
}
