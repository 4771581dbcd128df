package id

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New generates valid unique UUIDs", t, func() {
		a := New()
		b := New()
		So(IsValid(a), ShouldBeTrue)
		So(IsValid(b), ShouldBeTrue)
		So(a, ShouldNotEqual, b)
	})
}

func TestJobID(t *testing.T) {
	Convey("NewJobID mints a valid job id", t, func() {
		jobID := NewJobID()
		So(jobID, ShouldStartWith, JobIDPrefix)
		So(IsValidJobID(jobID), ShouldBeTrue)
	})

	Convey("NewJobID never repeats within a millisecond", t, func() {
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			jobID := NewJobID()
			So(seen[jobID], ShouldBeFalse)
			seen[jobID] = true
		}
	})

	Convey("IsValidJobID rejects malformed ids", t, func() {
		So(IsValidJobID(""), ShouldBeFalse)
		So(IsValidJobID("video_"), ShouldBeFalse)
		So(IsValidJobID("job_12345"), ShouldBeFalse)
		So(IsValidJobID("video_../../etc/passwd"), ShouldBeFalse)
		So(IsValidJobID("video_123;rm -rf"), ShouldBeFalse)
	})
}
