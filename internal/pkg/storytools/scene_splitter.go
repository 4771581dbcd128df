package storytools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultSceneCount is the number of scenes a story is partitioned into.
const DefaultSceneCount = 4

const sceneSplitSystem = "당신은 대본 형식 동화를 장면별로 나누는 전문가입니다. 원본의 '화자: 대사' 형식을 절대 변경하지 말고 그대로 유지하며, 모든 대화와 나레이션을 빠짐없이 포함해야 합니다. 항상 JSON 형식으로만 응답합니다."

const sceneSplitPromptTemplate = `다음 대본 형식 동화를 문맥의 흐름에 맞게 자연스럽게 %d개의 장면으로 나누어주세요.

**중요 규칙:**
1. 원본 텍스트의 "화자: 대사" 형식을 **절대 변경하지 말고 그대로 유지**하세요
2. 모든 대화와 나레이션을 **빠짐없이 모두 포함**하세요
3. 요약하거나 생략하지 말고 **원문을 그대로** %d개 장면으로 나누기만 하세요
4. 각 장면은 동화의 일부분이며, %d개를 합치면 전체 동화가 됩니다

동화 내용:
%s

출력 형식:
각 장면을 JSON 배열로 반환해주세요. 각 장면은 {"scene": 장면번호, "text": "장면 내용"} 형식입니다.

**다시 강조: 원본의 '화자: 대사' 형식을 절대 변경하지 말고, 모든 대화를 포함하세요!**
반드시 JSON 형식으로만 응답하고, 다른 텍스트는 포함하지 마세요.`

// SceneSplitter partitions a story transcript into a fixed number of
// ordered scenes. The primary path asks the model to do the split and to
// reproduce every line verbatim; the result is verified against the
// original and a deterministic line-chunk split is used when the model's
// output cannot be parsed or drops content.
type SceneSplitter struct {
	llm        TextGenerator
	sceneCount int
}

// NewSceneSplitter creates a scene splitter. sceneCount <= 0 selects
// DefaultSceneCount.
func NewSceneSplitter(llm TextGenerator, sceneCount int) *SceneSplitter {
	if sceneCount <= 0 {
		sceneCount = DefaultSceneCount
	}
	return &SceneSplitter{llm: llm, sceneCount: sceneCount}
}

// Split partitions story into scenes. Model or network errors propagate;
// parse and coverage failures are recovered via the fallback split.
func (s *SceneSplitter) Split(ctx context.Context, story string) ([]Scene, error) {
	prompt := fmt.Sprintf(sceneSplitPromptTemplate, s.sceneCount, s.sceneCount, s.sceneCount, story)

	raw, err := s.llm.Generate(ctx, sceneSplitSystem, prompt, GenerateOptions{
		MaxTokens:   3000,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("scene split request: %w", err)
	}

	scenes, err := s.parseScenes(raw)
	if err != nil {
		log.Warn().Err(err).Msg("scene split response not parseable, using fallback split")
		return s.fallbackSplit(story), nil
	}

	if !coversTranscript(story, scenes) {
		log.Warn().Msg("scene split dropped or altered lines, using fallback split")
		return s.fallbackSplit(story), nil
	}

	return scenes, nil
}

func (s *SceneSplitter) parseScenes(raw string) ([]Scene, error) {
	jsonText := extractJSONArray(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var scenes []Scene
	if err := json.Unmarshal([]byte(jsonText), &scenes); err != nil {
		return nil, fmt.Errorf("unmarshal scenes: %w", err)
	}
	if len(scenes) != s.sceneCount {
		return nil, fmt.Errorf("expected %d scenes, got %d", s.sceneCount, len(scenes))
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Index < scenes[j].Index })
	for i := range scenes {
		if scenes[i].Index != i+1 {
			return nil, fmt.Errorf("scene indexes not contiguous")
		}
	}
	return scenes, nil
}

// fallbackSplit divides the non-blank lines into sceneCount contiguous
// chunks of ceil(total/sceneCount) lines. Trailing chunks may be shorter
// or empty.
func (s *SceneSplitter) fallbackSplit(story string) []Scene {
	lines := NonBlankLines(story)
	chunkSize := (len(lines) + s.sceneCount - 1) / s.sceneCount

	scenes := make([]Scene, 0, s.sceneCount)
	for i := 0; i < s.sceneCount; i++ {
		start := i * chunkSize
		end := (i + 1) * chunkSize
		if start > len(lines) {
			start = len(lines)
		}
		if end > len(lines) {
			end = len(lines)
		}
		scenes = append(scenes, Scene{
			Index: i + 1,
			Text:  strings.Join(lines[start:end], "\n"),
		})
	}
	return scenes
}

// coversTranscript reports whether the scenes' lines, concatenated in
// index order, reproduce the transcript's non-blank lines exactly.
func coversTranscript(story string, scenes []Scene) bool {
	original := NonBlankLines(story)

	var reconstructed []string
	for _, scene := range scenes {
		reconstructed = append(reconstructed, NonBlankLines(scene.Text)...)
	}

	if len(original) != len(reconstructed) {
		return false
	}
	for i := range original {
		if original[i] != reconstructed[i] {
			return false
		}
	}
	return true
}

// extractJSONArray returns the outermost JSON array in raw, tolerating
// markdown code fences and surrounding prose.
func extractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
