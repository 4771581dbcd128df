package resource

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const downloadURLExpiry = 1 * time.Hour

// GetDownloadURL resolves a storage key to a fetchable URL
// @Summary      Resolve a download URL
// @Description  Returns a time-limited URL for a stored reference image
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "storage key"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/resources/download-url/{key} [get]
func (h *Handler) GetDownloadURL(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Missing storage key",
		})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.store.Exists(ctx, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to check object",
			Detail:  err.Error(),
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    40403,
			Message: "Object not found",
		})
		return
	}

	url, err := h.store.GetDownloadURL(ctx, key, downloadURLExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to build download URL",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"url":        url,
			"expires_in": int(downloadURLExpiry.Seconds()),
		},
	})
}
