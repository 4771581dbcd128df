package storytools

import (
	"context"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIllustrationPrompter_PromptForScene(t *testing.T) {
	ctx := context.Background()
	scene := Scene{Index: 1, Text: "나레이터: 옛날 옛적에.\n아이: 안녕!"}

	Convey("PromptForScene derives an image prompt per scene", t, func() {
		Convey("ages five and under get a bucketed descriptor, never the number", func() {
			llm := &stubTextGenerator{response: "A young child in a meadow"}
			prompter := NewIllustrationPrompter(llm, "system")

			_, err := prompter.PromptForScene(ctx, scene, StoryProfile{
				Name: "아이", AgeYears: 5, Gender: "female", EmotionID: "joy",
			})
			So(err, ShouldBeNil)
			So(llm.lastUser, ShouldContainSubstring, "young female child")
			So(llm.lastUser, ShouldNotContainSubstring, "5-year-old")
		})

		Convey("older characters carry their age", func() {
			llm := &stubTextGenerator{response: "A kid in a meadow"}
			prompter := NewIllustrationPrompter(llm, "system")

			_, err := prompter.PromptForScene(ctx, scene, StoryProfile{
				Name: "준호", AgeYears: 10, Gender: "male", EmotionID: "joy",
			})
			So(err, ShouldBeNil)
			So(llm.lastUser, ShouldContainSubstring, "10-year-old male")
		})

		Convey("the character's name never appears in the request", func() {
			llm := &stubTextGenerator{response: "prompt"}
			prompter := NewIllustrationPrompter(llm, "system")

			_, err := prompter.PromptForScene(ctx, scene, StoryProfile{
				Name: "준호", AgeYears: 7, Gender: "male", EmotionID: "joy", Comment: "공원에서 놀기",
			})
			So(err, ShouldBeNil)
			So(llm.lastUser, ShouldNotContainSubstring, "준호")
		})

		Convey("the scene text grounds the request as a bounded excerpt", func() {
			llm := &stubTextGenerator{response: "prompt"}
			prompter := NewIllustrationPrompter(llm, "system")

			long := Scene{Index: 2, Text: strings.Repeat("나레이터: 아주 긴 장면입니다. ", 40)}
			_, err := prompter.PromptForScene(ctx, long, StoryProfile{
				Name: "아이", AgeYears: 5, Gender: "female", EmotionID: "joy",
			})
			So(err, ShouldBeNil)
			So(llm.lastUser, ShouldContainSubstring, "Scene Summary: "+excerpt(long.Text, sceneExcerptRunes))
			So(llm.lastUser, ShouldNotContainSubstring, long.Text)
		})

		Convey("a reference image switches to the vision-conditioned path", func() {
			llm := &stubTextGenerator{response: "prompt"}
			prompter := NewIllustrationPrompter(llm, "system")

			_, err := prompter.PromptForScene(ctx, scene, StoryProfile{
				Name: "아이", AgeYears: 5, Gender: "female", EmotionID: "joy",
				ReferenceImageURL: "https://example.com/ref.jpg",
			})
			So(err, ShouldBeNil)
			So(llm.lastImage, ShouldEqual, "https://example.com/ref.jpg")
			So(llm.lastUser, ShouldContainSubstring, "the provided image")
		})

		Convey("an empty generation falls back to the default prompt", func() {
			llm := &stubTextGenerator{response: "   "}
			prompter := NewIllustrationPrompter(llm, "system")

			prompt, err := prompter.PromptForScene(ctx, scene, StoryProfile{
				Name: "아이", AgeYears: 5, Gender: "female", EmotionID: "joy",
			})
			So(err, ShouldBeNil)
			So(prompt, ShouldEqual, DefaultScenePrompt)
		})

		Convey("identical input produces an identical request", func() {
			profile := StoryProfile{Name: "아이", AgeYears: 5, Gender: "female", EmotionID: "joy", Comment: "소풍"}

			first := &stubTextGenerator{response: "prompt"}
			_, err := NewIllustrationPrompter(first, "system").PromptForScene(ctx, scene, profile)
			So(err, ShouldBeNil)

			second := &stubTextGenerator{response: "prompt"}
			_, err = NewIllustrationPrompter(second, "system").PromptForScene(ctx, scene, profile)
			So(err, ShouldBeNil)

			So(first.lastUser, ShouldEqual, second.lastUser)
		})
	})
}
