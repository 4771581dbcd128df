package model

import (
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// GenerateStoryRequest asks for a new scripted fairy tale.
type GenerateStoryRequest struct {
	Name              string `json:"name" binding:"required"`
	AgeYears          int    `json:"age" binding:"required"`
	Gender            string `json:"gender,omitempty"`   // male, female
	Category          string `json:"category,omitempty"` // child, adult
	Emotion           string `json:"emotion" binding:"required"`
	Comment           string `json:"comment,omitempty"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
}

// Profile converts the request into the pipeline profile.
func (r *GenerateStoryRequest) Profile() storytools.StoryProfile {
	return storytools.StoryProfile{
		Name:              r.Name,
		AgeYears:          r.AgeYears,
		Gender:            r.Gender,
		Category:          r.Category,
		EmotionID:         r.Emotion,
		Comment:           r.Comment,
		ReferenceImageURL: r.ReferenceImageURL,
	}
}

// TranslateStoryRequest asks for a story translation.
type TranslateStoryRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"` // ko, en, zh, ja
}

// SaveStoryRequest persists a generated story for the current user.
type SaveStoryRequest struct {
	Title             string `json:"title,omitempty"`
	Content           string `json:"content" binding:"required"`
	Language          string `json:"language,omitempty"`
	IllustrationURL   string `json:"illustrationUrl,omitempty"`
	Name              string `json:"name" binding:"required"`
	AgeYears          int    `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Category          string `json:"category,omitempty"`
	Emotion           string `json:"emotion" binding:"required"`
	Comment           string `json:"comment,omitempty"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
}

// SynthesizeSpeechRequest asks for a narrated rendition of a story as a
// standalone audio track.
type SynthesizeSpeechRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language,omitempty"` // ko, en; defaults to ko
	Voice    string `json:"voice,omitempty"`    // male, female
	Name     string `json:"characterName,omitempty"`
}

// GenerateVideoRequest accepts a story for asynchronous video rendering.
// Profile fields mirror the story-generation input; name and emotion are
// the required ones. StoryID optionally links the job back to a saved
// story document.
type GenerateVideoRequest struct {
	Story    string        `json:"story" binding:"required"`
	StoryID  string        `json:"storyId,omitempty"`
	UserData VideoUserData `json:"userData" binding:"required"`
}

// VideoUserData is the profile attached to a video job.
type VideoUserData struct {
	Name              string `json:"name"`
	AgeYears          int    `json:"age"`
	Gender            string `json:"gender,omitempty"`
	Category          string `json:"category,omitempty"`
	Emotion           string `json:"emotion"`
	Comment           string `json:"comment,omitempty"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
	VoicePref         string `json:"voicePref,omitempty"`
	Language          string `json:"language,omitempty"`
}

// Profile converts the job input into the pipeline profile.
func (d *VideoUserData) Profile() storytools.StoryProfile {
	return storytools.StoryProfile{
		Name:              d.Name,
		AgeYears:          d.AgeYears,
		Gender:            d.Gender,
		Category:          d.Category,
		EmotionID:         d.Emotion,
		Comment:           d.Comment,
		ReferenceImageURL: d.ReferenceImageURL,
		VoicePreference:   d.VoicePref,
	}
}

// UpdateSettingRequest changes a prompt template.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
