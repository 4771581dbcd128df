package storytools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// stubTextGenerator returns canned responses for splitter and prompter
// tests.
type stubTextGenerator struct {
	response  string
	err       error
	calls     int
	lastUser  string
	lastImage string
}

func (s *stubTextGenerator) Generate(_ context.Context, _, userPrompt string, _ GenerateOptions) (string, error) {
	s.calls++
	s.lastUser = userPrompt
	return s.response, s.err
}

func (s *stubTextGenerator) GenerateWithImage(_ context.Context, _, userPrompt, imageURL string, _ GenerateOptions) (string, error) {
	s.calls++
	s.lastUser = userPrompt
	s.lastImage = imageURL
	return s.response, s.err
}

const testStory = `나레이터: 옛날 옛적에.
아이: 안녕!
엄마: 잘 지냈니?
나레이터: 모두 행복했어요.`

func sceneJSON(scenes []Scene) string {
	data, _ := json.Marshal(scenes)
	return string(data)
}

func TestSceneSplitter_Split(t *testing.T) {
	ctx := context.Background()

	Convey("Split partitions a transcript into ordered scenes", t, func() {
		Convey("valid model output is used as-is", func() {
			llm := &stubTextGenerator{response: sceneJSON([]Scene{
				{Index: 1, Text: "나레이터: 옛날 옛적에."},
				{Index: 2, Text: "아이: 안녕!"},
				{Index: 3, Text: "엄마: 잘 지냈니?"},
				{Index: 4, Text: "나레이터: 모두 행복했어요."},
			})}
			splitter := NewSceneSplitter(llm, 4)

			scenes, err := splitter.Split(ctx, testStory)
			So(err, ShouldBeNil)
			So(scenes, ShouldHaveLength, 4)
			So(scenes[0].Text, ShouldEqual, "나레이터: 옛날 옛적에.")
			So(scenes[3].Text, ShouldEqual, "나레이터: 모두 행복했어요.")
		})

		Convey("markdown fences around the JSON are tolerated", func() {
			llm := &stubTextGenerator{response: "```json\n" + sceneJSON([]Scene{
				{Index: 1, Text: "나레이터: 옛날 옛적에."},
				{Index: 2, Text: "아이: 안녕!"},
				{Index: 3, Text: "엄마: 잘 지냈니?"},
				{Index: 4, Text: "나레이터: 모두 행복했어요."},
			}) + "\n```"}
			splitter := NewSceneSplitter(llm, 4)

			scenes, err := splitter.Split(ctx, testStory)
			So(err, ShouldBeNil)
			So(scenes, ShouldHaveLength, 4)
		})

		Convey("unparseable output falls back to the line-chunk split", func() {
			llm := &stubTextGenerator{response: "장면을 나누어 드리겠습니다."}
			splitter := NewSceneSplitter(llm, 4)

			scenes, err := splitter.Split(ctx, testStory)
			So(err, ShouldBeNil)
			So(scenes, ShouldHaveLength, 4)
			// ceil(4/4) = 1 line per scene
			So(scenes[0].Text, ShouldEqual, "나레이터: 옛날 옛적에.")
			So(scenes[1].Text, ShouldEqual, "아이: 안녕!")
			So(scenes[2].Text, ShouldEqual, "엄마: 잘 지냈니?")
			So(scenes[3].Text, ShouldEqual, "나레이터: 모두 행복했어요.")
		})

		Convey("output that drops a line forces the fallback", func() {
			llm := &stubTextGenerator{response: sceneJSON([]Scene{
				{Index: 1, Text: "나레이터: 옛날 옛적에."},
				{Index: 2, Text: "아이: 안녕!"},
				{Index: 3, Text: "엄마: 잘 지냈니?"},
				{Index: 4, Text: ""},
			})}
			splitter := NewSceneSplitter(llm, 4)

			scenes, err := splitter.Split(ctx, testStory)
			So(err, ShouldBeNil)
			So(scenes[3].Text, ShouldEqual, "나레이터: 모두 행복했어요.")
		})

		Convey("output that rewrites a line forces the fallback", func() {
			llm := &stubTextGenerator{response: sceneJSON([]Scene{
				{Index: 1, Text: "나레이터: 옛날 옛적에 아이가 살았어요."},
				{Index: 2, Text: "아이: 안녕!"},
				{Index: 3, Text: "엄마: 잘 지냈니?"},
				{Index: 4, Text: "나레이터: 모두 행복했어요."},
			})}
			splitter := NewSceneSplitter(llm, 4)

			scenes, err := splitter.Split(ctx, testStory)
			So(err, ShouldBeNil)
			So(scenes[0].Text, ShouldEqual, "나레이터: 옛날 옛적에.")
		})

		Convey("model errors propagate", func() {
			llm := &stubTextGenerator{err: errors.New("service unavailable")}
			splitter := NewSceneSplitter(llm, 4)

			_, err := splitter.Split(ctx, testStory)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSceneSplitter_FallbackCoverage(t *testing.T) {
	Convey("the fallback split uses every line exactly once", t, func() {
		splitter := NewSceneSplitter(nil, 4)

		Convey("line count not divisible by the scene count", func() {
			var lines []string
			for i := 0; i < 10; i++ {
				lines = append(lines, "나레이터: 문장입니다.")
			}
			story := strings.Join(lines, "\n")

			scenes := splitter.fallbackSplit(story)
			So(scenes, ShouldHaveLength, 4)
			// ceil(10/4) = 3: chunks of 3,3,3,1
			So(NonBlankLines(scenes[0].Text), ShouldHaveLength, 3)
			So(NonBlankLines(scenes[3].Text), ShouldHaveLength, 1)
			So(coversTranscript(story, scenes), ShouldBeTrue)
		})

		Convey("fewer lines than scenes leaves trailing scenes empty", func() {
			story := "나레이터: 하나.\n나레이터: 둘."
			scenes := splitter.fallbackSplit(story)
			So(scenes, ShouldHaveLength, 4)
			So(scenes[0].Text, ShouldEqual, "나레이터: 하나.")
			So(scenes[1].Text, ShouldEqual, "나레이터: 둘.")
			So(scenes[2].Text, ShouldBeEmpty)
			So(scenes[3].Text, ShouldBeEmpty)
		})

		Convey("blank lines are skipped", func() {
			story := "나레이터: 하나.\n\n\n나레이터: 둘.\n"
			scenes := splitter.fallbackSplit(story)
			So(coversTranscript(story, scenes), ShouldBeTrue)
		})
	})
}
