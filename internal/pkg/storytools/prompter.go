package storytools

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultScenePrompt is used when the prompt-generation call returns an
// empty result.
const DefaultScenePrompt = "A beautiful fairy tale scene"

// SafeFallbackPrompt replaces a prompt rejected by the image generator's
// content filter. Used for exactly one retry per scene.
const SafeFallbackPrompt = "A beautiful and safe illustration for a children's fairy tale, gentle and heartwarming style, simple background."

// sceneExcerptRunes caps the scene text attached to the prompt request as
// thematic grounding.
const sceneExcerptRunes = 150

// IllustrationPrompter derives an image-generation prompt per scene. The
// prompt carries an age-safety descriptor instead of a bare numeric age
// for young children, and never the character's name. With a reference
// image present the request is vision-conditioned so the prompt can
// describe the character's likeness.
type IllustrationPrompter struct {
	llm          TextGenerator
	systemPrompt string
}

// NewIllustrationPrompter creates a prompter. systemPrompt is the
// operator-configurable instruction block for the prompt generator.
func NewIllustrationPrompter(llm TextGenerator, systemPrompt string) *IllustrationPrompter {
	return &IllustrationPrompter{llm: llm, systemPrompt: systemPrompt}
}

// PromptForScene generates the illustration prompt for one scene.
func (p *IllustrationPrompter) PromptForScene(ctx context.Context, scene Scene, profile StoryProfile) (string, error) {
	userPrompt := buildPrompterRequest(scene, profile)
	opts := GenerateOptions{MaxTokens: 200, Temperature: 0.6}

	var (
		prompt string
		err    error
	)
	if profile.ReferenceImageURL != "" {
		prompt, err = p.llm.GenerateWithImage(ctx, p.systemPrompt, userPrompt, profile.ReferenceImageURL, opts)
	} else {
		prompt, err = p.llm.Generate(ctx, p.systemPrompt, userPrompt, opts)
	}
	if err != nil {
		return "", fmt.Errorf("illustration prompt for scene %d: %w", scene.Index, err)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		log.Warn().Int("scene", scene.Index).Msg("empty illustration prompt, using default")
		return DefaultScenePrompt, nil
	}
	return prompt, nil
}

func buildPrompterRequest(scene Scene, profile StoryProfile) string {
	var b strings.Builder

	b.WriteString("Create a DALL-E prompt for a fairy tale scene illustration")
	if profile.ReferenceImageURL != "" {
		b.WriteString(" based on the user input and the provided image")
	}
	b.WriteString(".\n")

	b.WriteString(fmt.Sprintf("- Character: %s\n", characterDescriptor(profile)))
	b.WriteString(fmt.Sprintf("- Emotion: %s\n", profile.EmotionID))
	comment := profile.Comment
	if comment == "" {
		comment = "None"
	}
	b.WriteString(fmt.Sprintf("- Comment: %s\n", comment))
	b.WriteString(fmt.Sprintf("- Scene Summary: %s\n", excerpt(scene.Text, sceneExcerptRunes)))

	b.WriteString("\nIMPORTANT SAFETY GUIDELINES:\n")
	b.WriteString("- For children 5 years old or younger: Use \"young child\" or \"little character\" instead of specific age\n")
	b.WriteString("- Do NOT include the character's name in the prompt\n")
	b.WriteString("- Focus on fairy tale style, gentle atmosphere, and emotional mood\n")
	b.WriteString("- Keep descriptions wholesome and child-friendly")

	return b.String()
}

// characterDescriptor buckets the age so prompts for very young children
// never carry a bare numeric age.
func characterDescriptor(profile StoryProfile) string {
	if profile.AgeYears <= 5 {
		return fmt.Sprintf("young %s child", profile.Gender)
	}
	return fmt.Sprintf("%d-year-old %s", profile.AgeYears, profile.Gender)
}
