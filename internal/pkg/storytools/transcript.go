package storytools

import "strings"

// StoryProfile is the user profile a story was generated for.
// Immutable once a job is accepted.
type StoryProfile struct {
	Name              string `json:"name"`
	AgeYears          int    `json:"age"`
	Gender            string `json:"gender"`   // male, female
	Category          string `json:"category"` // child, adult
	EmotionID         string `json:"emotion"`
	Comment           string `json:"comment,omitempty"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
	VoicePreference   string `json:"voicePref,omitempty"` // male, female
}

// Scene is one ordered partition of a story transcript.
// Concatenating all scenes' Text in index order reproduces the
// transcript's lines exactly.
type Scene struct {
	Index       int    `json:"scene"`
	Text        string `json:"text"`
	ImagePrompt string `json:"imagePrompt,omitempty"`
}

// NonBlankLines returns the transcript's trimmed non-blank lines in order.
func NonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

// SplitSpeakerLine splits a "speaker: dialogue" line. ok is false when the
// line has no colon, meaning it is plain narration.
func SplitSpeakerLine(line string) (speaker, dialogue string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
