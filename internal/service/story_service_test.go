package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

type stubTextGenerator struct {
	mu        sync.Mutex
	response  string
	err       error
	userMsgs  []string
	systemMsg string
}

func (s *stubTextGenerator) Generate(_ context.Context, system, user string, _ storytools.GenerateOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemMsg = system
	s.userMsgs = append(s.userMsgs, user)
	return s.response, s.err
}

func (s *stubTextGenerator) GenerateWithImage(ctx context.Context, system, user, _ string, opts storytools.GenerateOptions) (string, error) {
	return s.Generate(ctx, system, user, opts)
}

type stubImageGenerator struct {
	mu         sync.Mutex
	rejections int
	prompts    []string
	url        string
}

func (s *stubImageGenerator) Generate(_ context.Context, prompt string) (storytools.ImageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.rejections > 0 {
		s.rejections--
		return storytools.ImageResult{}, fmt.Errorf("%w: unsafe prompt", storytools.ErrContentPolicy)
	}
	return storytools.ImageResult{URL: s.url}, nil
}

var testProfile = storytools.StoryProfile{
	Name:      "지민",
	AgeYears:  5,
	Gender:    "female",
	Category:  "child",
	EmotionID: "joy",
	Comment:   "놀이터에서 신나게 놀았어요",
}

func TestStoryService_Generate(t *testing.T) {
	Convey("Generate produces a story with a title illustration", t, func() {
		llm := &stubTextGenerator{response: "  나레이터: 옛날 옛적에 지민이가 살았어요.  "}
		images := &stubImageGenerator{url: "https://images.example/story.png"}
		svc := NewStoryService(llm, images, nil, nil)

		result, err := svc.Generate(context.Background(), testProfile)
		So(err, ShouldBeNil)
		So(result.Story, ShouldEqual, "나레이터: 옛날 옛적에 지민이가 살았어요.")
		So(result.IllustrationURL, ShouldEqual, "https://images.example/story.png")
		So(result.Retried, ShouldBeFalse)

		Convey("the story prompt carries the profile fields, not the template placeholders", func() {
			var storyPrompt string
			for _, msg := range llm.userMsgs {
				if strings.Contains(msg, "지민") && strings.Contains(msg, "joy") {
					storyPrompt = msg
				}
			}
			So(storyPrompt, ShouldNotBeEmpty)
			So(storyPrompt, ShouldNotContainSubstring, "{name}")
			So(storyPrompt, ShouldNotContainSubstring, "{emotion}")
			So(storyPrompt, ShouldContainSubstring, "어린이")
		})
	})

	Convey("Generate retries once with the safe prompt on a content-policy rejection", t, func() {
		llm := &stubTextGenerator{response: "나레이터: 이야기."}
		images := &stubImageGenerator{rejections: 1, url: "https://images.example/safe.png"}
		svc := NewStoryService(llm, images, nil, nil)

		result, err := svc.Generate(context.Background(), testProfile)
		So(err, ShouldBeNil)
		So(result.Retried, ShouldBeTrue)
		So(result.IllustrationURL, ShouldEqual, "https://images.example/safe.png")

		So(images.prompts, ShouldHaveLength, 2)
		So(images.prompts[1], ShouldEqual, storytools.SafeFallbackPrompt)
	})

	Convey("Generate rejects an empty story", t, func() {
		llm := &stubTextGenerator{response: "   "}
		images := &stubImageGenerator{url: "https://images.example/x.png"}
		svc := NewStoryService(llm, images, nil, nil)

		_, err := svc.Generate(context.Background(), testProfile)
		So(err, ShouldNotBeNil)
	})
}

func TestStoryService_Translate(t *testing.T) {
	Convey("Translate renders into a supported language", t, func() {
		llm := &stubTextGenerator{response: "Narrator: Once upon a time."}
		svc := NewStoryService(llm, &stubImageGenerator{}, nil, nil)

		out, err := svc.Translate(context.Background(), "나레이터: 옛날 옛적에.", "en")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "Narrator: Once upon a time.")
		So(llm.systemMsg, ShouldContainSubstring, "English")
	})

	Convey("Translate rejects an empty result", t, func() {
		llm := &stubTextGenerator{response: "   "}
		svc := NewStoryService(llm, &stubImageGenerator{}, nil, nil)

		_, err := svc.Translate(context.Background(), "나레이터: 옛날 옛적에.", "en")
		So(err, ShouldNotBeNil)
	})

	Convey("Translate rejects an unsupported language", t, func() {
		svc := NewStoryService(&stubTextGenerator{}, &stubImageGenerator{}, nil, nil)

		_, err := svc.Translate(context.Background(), "text", "fr")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unsupported target language")
	})
}

func TestStoryService_AttachVideo(t *testing.T) {
	Convey("AttachVideo requires persistence to be configured", t, func() {
		svc := NewStoryService(&stubTextGenerator{}, &stubImageGenerator{}, nil, nil)

		err := svc.AttachVideo(context.Background(), "story-1", "video_1717622400123_9d3f2a4c")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "persistence is disabled")
	})
}

func TestStoryService_RenderStoryPrompt(t *testing.T) {
	Convey("renderStoryPrompt fills every placeholder", t, func() {
		svc := NewStoryService(&stubTextGenerator{}, &stubImageGenerator{}, nil, nil)

		prompt := svc.renderStoryPrompt(context.Background(), testProfile)
		So(prompt, ShouldContainSubstring, "지민")
		So(prompt, ShouldContainSubstring, "5")
		So(prompt, ShouldContainSubstring, "joy")
		So(prompt, ShouldContainSubstring, "놀이터에서 신나게 놀았어요")
		So(prompt, ShouldNotContainSubstring, "{")

		Convey("an empty comment renders as none", func() {
			profile := testProfile
			profile.Comment = ""
			prompt := svc.renderStoryPrompt(context.Background(), profile)
			So(prompt, ShouldContainSubstring, "없음")
		})
	})
}
