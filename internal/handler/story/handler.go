package story

import (
	"github.com/chaesu44438/emotion-theater/internal/service"
)

// Handler exposes the story endpoints. All story routes go through this
// struct.
type Handler struct {
	storyService *service.StoryService
}

// NewHandler creates the story handler.
func NewHandler(storyService *service.StoryService) *Handler {
	return &Handler{
		storyService: storyService,
	}
}
