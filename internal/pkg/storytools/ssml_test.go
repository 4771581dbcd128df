package storytools

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSSMLBuilder_Build(t *testing.T) {
	Convey("Build renders a transcript into voiced SSML", t, func() {
		builder := NewSSMLBuilder("ko", "아이", "female")

		Convey("each speaker gets the resolved voice, labels are never spoken", func() {
			ssml := builder.Build(testStory)

			So(ssml, ShouldStartWith, `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="ko-KR">`)
			So(ssml, ShouldEndWith, "</speak>")
			So(strings.Count(ssml, "<voice"), ShouldEqual, 4)

			// narrator, child, mother voices in order
			So(ssml, ShouldContainSubstring, `<voice name="ko-KR-SunHiNeural">`)
			So(ssml, ShouldContainSubstring, `<voice name="ko-KR-JiMinNeural">`)
			So(ssml, ShouldContainSubstring, `pitch="+1st"`)

			// dialogue only, no speaker labels
			So(ssml, ShouldContainSubstring, "옛날 옛적에.")
			So(ssml, ShouldNotContainSubstring, "나레이터")
			So(ssml, ShouldNotContainSubstring, "엄마")
			So(ssml, ShouldNotContainSubstring, "아이:")
		})

		Convey("consecutive lines of one voice merge into a single group", func() {
			ssml := builder.Build("나레이터: 첫 문장.\n나레이터: 둘째 문장.\n엄마: 셋째 문장.")

			So(strings.Count(ssml, "<voice"), ShouldEqual, 2)
			So(strings.Count(ssml, `<break time="400ms"/>`), ShouldEqual, 1)
			So(strings.Count(ssml, `<break time="500ms"/>`), ShouldEqual, 2)
		})

		Convey("lines without a colon are narrated", func() {
			ssml := builder.Build("아주 먼 옛날의 이야기.")
			So(strings.Count(ssml, `<voice name="ko-KR-SunHiNeural">`), ShouldEqual, 1)
			So(ssml, ShouldContainSubstring, "아주 먼 옛날의 이야기.")
		})

		Convey("lines with an empty dialogue are skipped", func() {
			ssml := builder.Build("나레이터:\n엄마: 안녕.")
			So(strings.Count(ssml, "<voice"), ShouldEqual, 1)
		})

		Convey("english transcripts use the en-US voice table", func() {
			enBuilder := NewSSMLBuilder("en", "Mia", "male")
			ssml := enBuilder.Build("Narrator: Once upon a time.\nMia: Hello.")

			So(ssml, ShouldContainSubstring, `xml:lang="en-US"`)
			So(strings.Count(ssml, `<voice name="en-US-GuyNeural">`), ShouldEqual, 2)
			So(ssml, ShouldContainSubstring, `pitch="+10%"`)
		})
	})
}

func TestSSMLBuilder_GroupCap(t *testing.T) {
	Convey("a transcript with many speaker switches stays within the voice cap", t, func() {
		builder := NewSSMLBuilder("ko", "아이", "female")

		var lines []string
		for i := 0; i < 40; i++ {
			lines = append(lines, fmt.Sprintf("나레이터: 문장 %d번.", i))
			lines = append(lines, fmt.Sprintf("엄마: 대답 %d번.", i))
		}
		ssml := builder.Build(strings.Join(lines, "\n"))

		So(strings.Count(ssml, "<voice"), ShouldBeLessThanOrEqualTo, MaxVoiceElements)

		Convey("merging never drops dialogue", func() {
			for i := 0; i < 40; i++ {
				So(ssml, ShouldContainSubstring, fmt.Sprintf("문장 %d번.", i))
				So(ssml, ShouldContainSubstring, fmt.Sprintf("대답 %d번.", i))
			}
		})
	})
}

func TestShapeEmotion(t *testing.T) {
	Convey("shapeEmotion layers prosody from punctuation cues", t, func() {
		Convey("interjections get strong emphasis", func() {
			shaped := shapeEmotion("우와! 정말 멋지다")
			So(shaped, ShouldContainSubstring, `<emphasis level="strong"><prosody pitch="+15%" rate="1.1">우와!</prosody></emphasis>`)
		})

		Convey("exclamatory clauses get a lively tone", func() {
			shaped := shapeEmotion("정말 기뻤어요!")
			So(shaped, ShouldContainSubstring, `<prosody pitch="+8%" rate="1.05">`)
		})

		Convey("questions get a raised pitch", func() {
			shaped := shapeEmotion("어디 가니?")
			So(shaped, ShouldContainSubstring, `<prosody pitch="+5%">어디 가니?</prosody>`)
		})

		Convey("ellipses slow down with surrounding pauses", func() {
			shaped := shapeEmotion("그리고...")
			So(shaped, ShouldContainSubstring, `<break time="300ms"/><prosody rate="0.85">...</prosody><break time="300ms"/>`)
		})

		Convey("already shaped spans are not wrapped twice", func() {
			shaped := shapeEmotion("우와!")
			So(strings.Count(shaped, "<emphasis"), ShouldEqual, 1)
			So(shaped, ShouldNotContainSubstring, `pitch="+8%"`)
		})

		Convey("markup characters in dialogue are escaped before shaping", func() {
			shaped := shapeEmotion(`<speak> & "quotes"`)
			So(shaped, ShouldNotContainSubstring, "<speak>")
			So(shaped, ShouldContainSubstring, "&lt;speak&gt;")
			So(shaped, ShouldContainSubstring, "&amp;")
			So(shaped, ShouldContainSubstring, "&quot;quotes&quot;")
		})
	})
}

func TestCapGroups(t *testing.T) {
	Convey("capGroups merges the shortest group into a neighbor", t, func() {
		narrator := VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "0%", Rate: "0%"}
		mother := VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "+1st", Rate: "0%"}

		Convey("below the cap nothing changes", func() {
			groups := []*speechGroup{
				{voice: narrator, dialogues: []string{"하나"}},
				{voice: mother, dialogues: []string{"둘"}},
			}
			So(capGroups(groups), ShouldHaveLength, 2)
		})

		Convey("a shortest first group merges into its successor keeping order", func() {
			groups := make([]*speechGroup, 0, MaxVoiceElements+1)
			groups = append(groups, &speechGroup{voice: narrator, dialogues: []string{"짧음"}})
			for i := 0; i < MaxVoiceElements; i++ {
				voice := narrator
				if i%2 == 0 {
					voice = mother
				}
				groups = append(groups, &speechGroup{voice: voice, dialogues: []string{"충분히 긴 대사입니다"}})
			}

			capped := capGroups(groups)
			So(capped, ShouldHaveLength, MaxVoiceElements)
			So(capped[0].dialogues[0], ShouldEqual, "짧음")
			So(capped[0].dialogues[1], ShouldEqual, "충분히 긴 대사입니다")
		})
	})
}
