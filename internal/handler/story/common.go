package story

import (
	"time"

	"github.com/chaesu44438/emotion-theater/internal/model/story"
	httputil "github.com/chaesu44438/emotion-theater/internal/pkg/http"
)

// ErrorResponse error body shared by all story endpoints.
type ErrorResponse = httputil.ErrorResponse

// StoryInfo story DTO.
type StoryInfo struct {
	ID              string `json:"id"`
	Title           string `json:"title,omitempty"`
	Content         string `json:"content"`
	Language        string `json:"language"`
	IllustrationURL string `json:"illustrationUrl,omitempty"`
	VideoID         string `json:"videoId,omitempty"`
	Name            string `json:"name"`
	AgeYears        int    `json:"age,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Category        string `json:"category,omitempty"`
	Emotion         string `json:"emotion"`
	Comment         string `json:"comment,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// toStoryInfo converts a Story entity into its response shape.
func toStoryInfo(item *story.Story) StoryInfo {
	return StoryInfo{
		ID:              item.ID,
		Title:           item.Title,
		Content:         item.Content,
		Language:        item.Language,
		IllustrationURL: item.IllustrationURL,
		VideoID:         item.VideoID,
		Name:            item.Profile.Name,
		AgeYears:        item.Profile.AgeYears,
		Gender:          item.Profile.Gender,
		Category:        item.Profile.Category,
		Emotion:         item.Profile.EmotionID,
		Comment:         item.Profile.Comment,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
}

// toStoryInfoList converts a Story list into its response shape.
func toStoryInfoList(items []*story.Story) []StoryInfo {
	result := make([]StoryInfo, len(items))
	for i, item := range items {
		result[i] = toStoryInfo(item)
	}
	return result
}
