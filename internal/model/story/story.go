package story

import (
	"time"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// Story is one generated fairy tale saved by a user.
type Story struct {
	ID              string                  `bson:"_id,omitempty" json:"id"`
	UserID          string                  `bson:"user_id" json:"user_id"`
	Title           string                  `bson:"title,omitempty" json:"title,omitempty"`
	Profile         storytools.StoryProfile `bson:"profile" json:"profile"`
	Content         string                  `bson:"content" json:"content"` // script-formatted transcript
	Language        string                  `bson:"language" json:"language"`
	IllustrationURL string                  `bson:"illustration_url,omitempty" json:"illustrationUrl,omitempty"`
	VideoID         string                  `bson:"video_id,omitempty" json:"videoId,omitempty"`
	CreatedAt       time.Time               `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time               `bson:"updated_at" json:"updated_at"`
}

// Setting is an operator-editable key/value record, currently holding the
// prompt templates.
type Setting struct {
	ID        string    `bson:"_id" json:"id"` // storyPrompt, imagePromptSystem
	Type      string    `bson:"type" json:"type"`
	Value     string    `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SettingTypePrompt is the type value for prompt-template settings.
const SettingTypePrompt = "prompt"

// Well-known setting IDs.
const (
	SettingStoryPrompt       = "storyPrompt"
	SettingImagePromptSystem = "imagePromptSystem"
)
