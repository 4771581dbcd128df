package story

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	storymodel "github.com/chaesu44438/emotion-theater/internal/model/story"
)

func TestDefault(t *testing.T) {
	Convey("Default returns the compiled-in templates", t, func() {
		storyPrompt := Default(storymodel.SettingStoryPrompt)
		So(storyPrompt, ShouldNotBeEmpty)
		So(storyPrompt, ShouldContainSubstring, "{name}")
		So(storyPrompt, ShouldContainSubstring, "{emotion}")
		So(storyPrompt, ShouldContainSubstring, "{comment}")

		imageSystem := Default(storymodel.SettingImagePromptSystem)
		So(imageSystem, ShouldNotBeEmpty)
		So(imageSystem, ShouldContainSubstring, "fairy tale")
	})

	Convey("Default returns empty for an unknown setting", t, func() {
		So(Default("nope"), ShouldBeEmpty)
	})
}
