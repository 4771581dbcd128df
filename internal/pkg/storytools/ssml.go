package storytools

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxVoiceElements caps the number of voice segments in one markup
// document. The synthesizer rejects documents beyond this, so the
// smallest groups are merged into neighbors when exceeded.
const MaxVoiceElements = 50

// speechGroup is a maximal run of consecutive lines sharing one resolved
// voice profile.
type speechGroup struct {
	voice     VoiceProfile
	dialogues []string
}

func (g *speechGroup) textLen() int {
	n := 0
	for _, d := range g.dialogues {
		n += len([]rune(d))
	}
	return n
}

// SSMLBuilder converts a "speaker: line" scripted transcript into an SSML
// document with per-speaker voices and prosody shaping from punctuation
// cues. Only dialogue is rendered to audio; speaker labels are never
// spoken.
type SSMLBuilder struct {
	language        string
	characterName   string
	voicePreference string
}

// NewSSMLBuilder creates a builder for one story. language selects the
// voice table ("ko" or "en", default "ko").
func NewSSMLBuilder(language, characterName, voicePreference string) *SSMLBuilder {
	if voicePreference == "" {
		voicePreference = "female"
	}
	return &SSMLBuilder{
		language:        language,
		characterName:   characterName,
		voicePreference: voicePreference,
	}
}

// Build renders the transcript text into one SSML document.
func (b *SSMLBuilder) Build(text string) string {
	groups := b.groupLines(text)
	groups = capGroups(groups)

	langCode := "ko-KR"
	if b.language == "en" {
		langCode = "en-US"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<speak version=\"1.0\" xmlns=\"http://www.w3.org/2001/10/synthesis\" xml:lang=\"%s\">\n", langCode))

	for _, group := range groups {
		sb.WriteString(fmt.Sprintf("  <voice name=\"%s\">\n", group.voice.Name))
		sb.WriteString(fmt.Sprintf("    <prosody rate=\"%s\" pitch=\"%s\">", group.voice.Rate, group.voice.Pitch))
		for i, dialogue := range group.dialogues {
			sb.WriteString(shapeEmotion(dialogue))
			if i < len(group.dialogues)-1 {
				sb.WriteString(`<break time="400ms"/>`)
			}
		}
		sb.WriteString("<break time=\"500ms\"/></prosody>\n")
		sb.WriteString("  </voice>\n")
	}

	sb.WriteString("</speak>")

	log.Debug().Int("groups", len(groups)).Msg("ssml built")
	return sb.String()
}

// groupLines resolves a voice per line and merges consecutive lines that
// share one. Lines without a "speaker:" prefix are narrator text.
func (b *SSMLBuilder) groupLines(text string) []*speechGroup {
	var groups []*speechGroup

	for _, line := range NonBlankLines(text) {
		speaker, dialogue, ok := SplitSpeakerLine(line)
		if !ok {
			speaker = "나레이터"
			if b.language == "en" {
				speaker = "Narrator"
			}
			dialogue = line
		}
		if dialogue == "" {
			continue
		}

		voice := ResolveVoice(speaker, b.language, b.characterName, b.voicePreference)

		if n := len(groups); n > 0 && groups[n-1].voice == voice {
			groups[n-1].dialogues = append(groups[n-1].dialogues, dialogue)
			continue
		}
		groups = append(groups, &speechGroup{voice: voice, dialogues: []string{dialogue}})
	}

	return groups
}

// capGroups merges the shortest group into its predecessor (or, for the
// first group, its successor) until at most MaxVoiceElements remain.
// Merging reorganizes grouping only; dialogue text is never dropped.
func capGroups(groups []*speechGroup) []*speechGroup {
	if len(groups) <= MaxVoiceElements {
		return groups
	}

	log.Info().Int("groups", len(groups)).Int("max", MaxVoiceElements).Msg("voice group cap exceeded, merging")

	for len(groups) > MaxVoiceElements {
		shortest := 0
		minLen := groups[0].textLen()
		for i := 1; i < len(groups); i++ {
			if l := groups[i].textLen(); l < minLen {
				minLen = l
				shortest = i
			}
		}

		if shortest > 0 {
			groups[shortest-1].dialogues = append(groups[shortest-1].dialogues, groups[shortest].dialogues...)
			groups = append(groups[:shortest], groups[shortest+1:]...)
		} else {
			groups[1].dialogues = append(append([]string{}, groups[0].dialogues...), groups[1].dialogues...)
			groups = groups[1:]
		}
	}

	return groups
}

var (
	interjectionRe = regexp.MustCompile(`(와|우와|어머|앗|헉|오|아|야|이런|대단해|멋져|좋아|신나|최고)(!+)`)
	exclamationRe  = regexp.MustCompile(`[^<>\n]+!+`)
	questionRe     = regexp.MustCompile(`[^<>\n]+\?+`)
	ellipsisRe     = regexp.MustCompile(`\.\.\.+|…`)
)

// shapeEmotion escapes the dialogue for XML and layers prosody cues from
// punctuation: interjections get strong emphasis, exclamatory and
// interrogative clauses get raised pitch, ellipses slow down with
// surrounding pauses. Escaping happens first so user text cannot inject
// markup. Already shaped spans are hidden behind placeholders so a later
// stage never wraps them again; the clause regexes stop at '<' and '>',
// which the placeholders contain.
func shapeEmotion(text string) string {
	processed := EscapeXML(text)

	var spans []string
	hide := func(tagged string) string {
		spans = append(spans, tagged)
		return fmt.Sprintf("<\x00%d>", len(spans)-1)
	}

	processed = interjectionRe.ReplaceAllStringFunc(processed, func(match string) string {
		return hide(`<emphasis level="strong"><prosody pitch="+15%" rate="1.1">` + match + `</prosody></emphasis>`)
	})

	processed = exclamationRe.ReplaceAllStringFunc(processed, func(match string) string {
		return hide(`<prosody pitch="+8%" rate="1.05">` + match + `</prosody>`)
	})

	processed = questionRe.ReplaceAllStringFunc(processed, func(match string) string {
		return hide(`<prosody pitch="+5%">` + match + `</prosody>`)
	})

	processed = ellipsisRe.ReplaceAllStringFunc(processed, func(match string) string {
		return `<break time="300ms"/><prosody rate="0.85">` + match + `</prosody><break time="300ms"/>`
	})

	for i, span := range spans {
		processed = strings.Replace(processed, fmt.Sprintf("<\x00%d>", i), span, 1)
	}
	return processed
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML special characters.
func EscapeXML(text string) string {
	return xmlEscaper.Replace(text)
}
