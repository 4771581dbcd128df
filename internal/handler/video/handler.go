package video

import (
	httputil "github.com/chaesu44438/emotion-theater/internal/pkg/http"
	"github.com/chaesu44438/emotion-theater/internal/service"
	"github.com/chaesu44438/emotion-theater/internal/service/video"
)

// ErrorResponse error body shared by all video endpoints.
type ErrorResponse = httputil.ErrorResponse

// Handler exposes the video pipeline endpoints. All video routes go
// through this struct.
type Handler struct {
	videoService *video.Service
	storyService *service.StoryService // optional, links jobs to saved stories
}

// NewHandler creates the video handler. storyService may be nil when
// persistence is disabled.
func NewHandler(videoService *video.Service, storyService *service.StoryService) *Handler {
	return &Handler{
		videoService: videoService,
		storyService: storyService,
	}
}
