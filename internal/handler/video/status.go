package video

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/model"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/service/video"
)

// Status reports the state of a video job
// @Summary      Poll a video job
// @Description  Returns processing, completed with a download URL, or failed with the reason
// @Tags         video
// @Produce      json
// @Param        id   path      string  true  "job ID"
// @Success      200  {object}  model.VideoStatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/video/status/{id} [get]
func (h *Handler) Status(c *gin.Context) {
	jobID := c.Param("id")
	if !id.IsValidJobID(jobID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40003,
			Message: "Invalid video ID",
		})
		return
	}

	status, downloadURL, failure := h.videoService.Status(jobID)

	resp := model.VideoStatusResponse{
		Status:  status,
		VideoID: jobID,
	}
	switch status {
	case video.StatusCompleted:
		resp.DownloadURL = downloadURL
	case video.StatusFailed:
		resp.Error = failure
	}

	c.JSON(http.StatusOK, resp)
}
