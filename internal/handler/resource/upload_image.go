package resource

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
)

var allowedImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// UploadImageResponseData reference-image upload response payload.
type UploadImageResponseData struct {
	ResourceID string `json:"resource_id"`
	ImageURL   string `json:"imageUrl"`
	FileSize   int64  `json:"file_size"`
	FileName   string `json:"file_name"`
}

// UploadImage stores a reference image
// @Summary      Upload a reference image
// @Description  Uploads a child photo used to condition illustration prompts, via multipart/form-data
// @Tags         resources
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "image file"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/resources/reference-image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid file",
			Detail:  err.Error(),
		})
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40002,
			Message: "Unsupported image type",
		})
		return
	}

	reader, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40003,
			Message: "Failed to open file",
			Detail:  err.Error(),
		})
		return
	}
	defer reader.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/" + ext
	}

	resourceID := id.New()
	key := fmt.Sprintf("reference-images/%s/%s.%s", time.Now().Format("2006/01/02"), resourceID, ext)

	ctx := c.Request.Context()
	url, err := h.store.Upload(ctx, key, reader, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "Failed to store image",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "uploaded",
		"data": UploadImageResponseData{
			ResourceID: resourceID,
			ImageURL:   url,
			FileSize:   file.Size,
			FileName:   file.Filename,
		},
	})
}
