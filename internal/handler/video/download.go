package video

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
)

// Download streams a finished video
// @Summary      Download a video
// @Description  Streams the rendered video as an MP4 attachment
// @Tags         video
// @Produce      video/mp4
// @Param        id   path      string  true  "job ID"
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/video/download/{id} [get]
func (h *Handler) Download(c *gin.Context) {
	jobID := c.Param("id")
	if !id.IsValidJobID(jobID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40003,
			Message: "Invalid video ID",
		})
		return
	}

	path := h.videoService.OutputPath(jobID)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    40402,
			Message: "Video not found",
		})
		return
	}

	c.FileAttachment(path, fmt.Sprintf("fairytale_%s.mp4", jobID))
}
