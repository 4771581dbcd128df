package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/chaesu44438/emotion-theater/internal/model/story"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
	storyRepo "github.com/chaesu44438/emotion-theater/internal/repository/story"
)

// ErrStoryNotFound returned when a story does not exist or belongs to
// another user.
var ErrStoryNotFound = errors.New("story not found")

const storytellerSystem = "You are a kind and creative storyteller. This is for educational and therapeutic purposes to help children process emotions through storytelling. Always complete stories with a positive ending."

// translation target names for the translator prompt
var translationLanguages = map[string]string{
	"ko": "Korean",
	"en": "English",
	"zh": "Chinese",
	"ja": "Japanese",
}

// StoryService story generation, translation and persistence.
type StoryService struct {
	llm      storytools.TextGenerator
	images   storytools.ImageGenerator
	stories  *storyRepo.StoryRepo   // optional, nil without MongoDB
	settings *storyRepo.SettingRepo // optional, nil without MongoDB
}

// NewStoryService creates the story service. stories and settings may be
// nil when the persistence layer is disabled.
func NewStoryService(
	llm storytools.TextGenerator,
	images storytools.ImageGenerator,
	stories *storyRepo.StoryRepo,
	settings *storyRepo.SettingRepo,
) *StoryService {
	return &StoryService{
		llm:      llm,
		images:   images,
		stories:  stories,
		settings: settings,
	}
}

// GenerateResult is a freshly generated story with its title
// illustration.
type GenerateResult struct {
	Story           string
	IllustrationURL string
	Retried         bool
}

// Generate produces a scripted story and a title illustration for the
// given profile. The story text and the illustration prompt are
// requested concurrently.
func (s *StoryService) Generate(ctx context.Context, profile storytools.StoryProfile) (*GenerateResult, error) {
	storyPrompt := s.renderStoryPrompt(ctx, profile)
	prompter := storytools.NewIllustrationPrompter(s.llm, s.imagePromptSystem(ctx))

	var storyText, imagePrompt string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.llm.Generate(gctx, storytellerSystem, storyPrompt, storytools.GenerateOptions{
			MaxTokens:   2500,
			Temperature: 0.8,
		})
		if err != nil {
			return fmt.Errorf("generate story: %w", err)
		}
		storyText = strings.TrimSpace(text)
		return nil
	})
	g.Go(func() error {
		// the profile doubles as a one-scene "title page" subject
		prompt, err := prompter.PromptForScene(gctx, storytools.Scene{Index: 1, Text: profile.Comment}, profile)
		if err != nil {
			return fmt.Errorf("generate illustration prompt: %w", err)
		}
		imagePrompt = prompt
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if storyText == "" {
		return nil, errors.New("empty story from text generator")
	}

	image, retried, err := s.generateImageSafely(ctx, imagePrompt)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Story:           storyText,
		IllustrationURL: image.URL,
		Retried:         retried,
	}, nil
}

// RegeneratePrompt derives a fresh illustration for an existing story.
func (s *StoryService) RegeneratePrompt(ctx context.Context, profile storytools.StoryProfile) (string, error) {
	prompter := storytools.NewIllustrationPrompter(s.llm, s.imagePromptSystem(ctx))

	prompt, err := prompter.PromptForScene(ctx, storytools.Scene{Index: 1, Text: profile.Comment}, profile)
	if err != nil {
		return "", err
	}

	image, _, err := s.generateImageSafely(ctx, prompt)
	if err != nil {
		return "", err
	}
	return image.URL, nil
}

// generateImageSafely generates an image, retrying exactly once with the
// safe fallback prompt on a content-policy rejection.
func (s *StoryService) generateImageSafely(ctx context.Context, prompt string) (storytools.ImageResult, bool, error) {
	image, err := s.images.Generate(ctx, prompt)
	if err == nil {
		return image, false, nil
	}
	if !errors.Is(err, storytools.ErrContentPolicy) {
		return storytools.ImageResult{}, false, err
	}

	log.Warn().Msg("illustration prompt rejected by content policy, retrying with safe prompt")
	image, err = s.images.Generate(ctx, storytools.SafeFallbackPrompt)
	if err != nil {
		return storytools.ImageResult{}, false, err
	}
	return image, true, nil
}

// Translate renders the story into the target language, preserving the
// script format.
func (s *StoryService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	name, ok := translationLanguages[targetLanguage]
	if !ok {
		return "", fmt.Errorf("unsupported target language: %s", targetLanguage)
	}

	system := fmt.Sprintf("You are a professional translator. Translate the given scripted fairy tale into %s. Keep the \"speaker: line\" format of every line exactly; translate speaker names and dialogue naturally for children. Output only the translated text.", name)

	translated, err := s.llm.Generate(ctx, system, text, storytools.GenerateOptions{
		MaxTokens:   2500,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("translate story: %w", err)
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", errors.New("empty translation from text generator")
	}
	return translated, nil
}

// Save persists a story for a user.
func (s *StoryService) Save(ctx context.Context, userID string, item *story.Story) (*story.Story, error) {
	if s.stories == nil {
		return nil, errors.New("story persistence is disabled")
	}

	item.ID = id.New()
	item.UserID = userID
	if item.Language == "" {
		item.Language = "ko"
	}
	if err := s.stories.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the user's stories, newest first.
func (s *StoryService) List(ctx context.Context, userID string) ([]*story.Story, error) {
	if s.stories == nil {
		return nil, errors.New("story persistence is disabled")
	}
	return s.stories.ListByUser(ctx, userID)
}

// AttachVideo records the video job rendered from a saved story, so the
// story document carries its finished video. The video routes are
// public, so the link is keyed by story ID alone.
func (s *StoryService) AttachVideo(ctx context.Context, storyID, videoID string) error {
	if s.stories == nil {
		return errors.New("story persistence is disabled")
	}
	if _, err := s.stories.FindByID(ctx, storyID); err != nil {
		return ErrStoryNotFound
	}
	return s.stories.SetVideoID(ctx, storyID, videoID)
}

// Delete removes one of the user's stories.
func (s *StoryService) Delete(ctx context.Context, userID, storyID string) error {
	if s.stories == nil {
		return errors.New("story persistence is disabled")
	}
	if err := s.stories.Delete(ctx, storyID, userID); err != nil {
		return ErrStoryNotFound
	}
	return nil
}

// renderStoryPrompt fills the story template with profile fields.
func (s *StoryService) renderStoryPrompt(ctx context.Context, profile storytools.StoryProfile) string {
	template := storyRepo.Default(story.SettingStoryPrompt)
	if s.settings != nil {
		template = s.settings.Get(ctx, story.SettingStoryPrompt)
	}

	category := "어른"
	if profile.Category == "child" {
		category = "어린이"
	}
	gender := "여자"
	if profile.Gender == "male" {
		gender = "남자"
	}
	comment := profile.Comment
	if comment == "" {
		comment = "없음"
	}

	replacer := strings.NewReplacer(
		"{name}", profile.Name,
		"{category}", category,
		"{age}", fmt.Sprintf("%d", profile.AgeYears),
		"{gender}", gender,
		"{emotion}", profile.EmotionID,
		"{comment}", comment,
	)
	return replacer.Replace(template)
}

// imagePromptSystem resolves the prompter system prompt, preferring the
// operator override.
func (s *StoryService) imagePromptSystem(ctx context.Context) string {
	if s.settings != nil {
		return s.settings.Get(ctx, story.SettingImagePromptSystem)
	}
	return storyRepo.Default(story.SettingImagePromptSystem)
}
