package storytools

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveVoice(t *testing.T) {
	Convey("ResolveVoice maps speaker labels to voice profiles", t, func() {
		Convey("korean role table", func() {
			So(ResolveVoice("나레이터", "ko", "아이", "female").Name, ShouldEqual, "ko-KR-SunHiNeural")
			So(ResolveVoice("나레이터", "ko", "아이", "male").Name, ShouldEqual, "ko-KR-InJoonNeural")
			So(ResolveVoice("엄마", "ko", "아이", "female"), ShouldResemble, VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "+1st", Rate: "0%"})
			So(ResolveVoice("아빠", "ko", "아이", "female"), ShouldResemble, VoiceProfile{Name: "ko-KR-InJoonNeural", Pitch: "-1st", Rate: "0%"})
			So(ResolveVoice("할머니", "ko", "아이", "female").Rate, ShouldEqual, "-5%")
			So(ResolveVoice("할아버지", "ko", "아이", "female").Name, ShouldEqual, "ko-KR-BongJinNeural")
		})

		Convey("korean animal groups by keyword", func() {
			small := ResolveVoice("토끼", "ko", "아이", "female")
			So(small.Name, ShouldEqual, "ko-KR-JiMinNeural")
			So(ResolveVoice("아기 다람쥐", "ko", "아이", "female"), ShouldResemble, small)

			large := ResolveVoice("곰", "ko", "아이", "female")
			So(large.Name, ShouldEqual, "ko-KR-BongJinNeural")
			So(ResolveVoice("부엉이", "ko", "아이", "female"), ShouldResemble, large)
		})

		Convey("the protagonist's name resolves to the child voice", func() {
			So(ResolveVoice("아이", "ko", "아이", "female"), ShouldResemble, VoiceProfile{Name: "ko-KR-JiMinNeural", Pitch: "+2st", Rate: "0%"})
			So(ResolveVoice("아이", "ko", "아이", "male").Pitch, ShouldEqual, "+2st")
		})

		Convey("unknown speakers default to the narrator voice", func() {
			So(ResolveVoice("이웃 사람", "ko", "아이", "female").Name, ShouldEqual, "ko-KR-SunHiNeural")
			So(ResolveVoice("이웃 사람", "ko", "아이", "male").Name, ShouldEqual, "ko-KR-InJoonNeural")
		})

		Convey("english role table", func() {
			So(ResolveVoice("Narrator", "en", "Mia", "female").Name, ShouldEqual, "en-US-JennyNeural")
			So(ResolveVoice("Mother", "en", "Mia", "female").Pitch, ShouldEqual, "+5%")
			So(ResolveVoice("Father", "en", "Mia", "female").Pitch, ShouldEqual, "-5%")
			So(ResolveVoice("Rabbit", "en", "Mia", "female").Pitch, ShouldEqual, "+15%")
			So(ResolveVoice("Bear", "en", "Mia", "female").Pitch, ShouldEqual, "-15%")
			So(ResolveVoice("Mia", "en", "Mia", "female").Pitch, ShouldEqual, "+10%")
		})

		Convey("grandmother is matched before mother despite the shared suffix", func() {
			gm := ResolveVoice("Grandmother", "en", "Mia", "female")
			So(gm.Pitch, ShouldEqual, "-5%")
			So(gm.Rate, ShouldEqual, "-5%")
			gf := ResolveVoice("Grandfather", "en", "Mia", "female")
			So(gf.Pitch, ShouldEqual, "-10%")
		})

		Convey("matching ignores case and surrounding whitespace", func() {
			So(ResolveVoice("  NARRATOR ", "en", "Mia", "male").Name, ShouldEqual, "en-US-GuyNeural")
		})
	})
}
