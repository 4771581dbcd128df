package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

const testStory = `나레이터: 옛날 옛적에.
아이: 안녕!
엄마: 잘 지냈니?
나레이터: 모두 행복했어요.`

var testProfile = storytools.StoryProfile{
	Name:            "아이",
	AgeYears:        5,
	Gender:          "female",
	EmotionID:       "joy",
	VoicePreference: "female",
}

// stubLLM answers every call with a non-JSON string, which drives the
// splitter onto its deterministic fallback and doubles as the prompt
// text for the prompter.
type stubLLM struct {
	mu    sync.Mutex
	delay map[int]time.Duration // per-call delays, keyed by call order
	calls int
}

func (s *stubLLM) Generate(ctx context.Context, _, _ string, _ storytools.GenerateOptions) (string, error) {
	s.mu.Lock()
	call := s.calls
	s.calls++
	delay := s.delay[call]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "a gentle fairy tale illustration", nil
}

func (s *stubLLM) GenerateWithImage(ctx context.Context, system, user, _ string, opts storytools.GenerateOptions) (string, error) {
	return s.Generate(ctx, system, user, opts)
}

// stubImages returns inline image bytes, optionally rejecting the first
// n prompts with a content-policy error.
type stubImages struct {
	mu         sync.Mutex
	rejections int
	prompts    []string
}

func (s *stubImages) Generate(_ context.Context, prompt string) (storytools.ImageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.rejections > 0 {
		s.rejections--
		return storytools.ImageResult{}, fmt.Errorf("%w: rejected", storytools.ErrContentPolicy)
	}
	return storytools.ImageResult{Data: []byte("image-bytes")}, nil
}

type stubSpeech struct{}

func (stubSpeech) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return []byte("audio-bytes"), nil
}

// stubEncoder writes marker files instead of invoking ffmpeg and records
// the clip order passed to concat.
type stubEncoder struct {
	mu             sync.Mutex
	concatOrder    []string
	durationProbes int
}

func (s *stubEncoder) EncodeSceneClip(_ context.Context, imagePath, audioPath, outputPath string) error {
	return os.WriteFile(outputPath, []byte(imagePath+"+"+audioPath), 0o644)
}

func (s *stubEncoder) AudioDuration(_ context.Context, _ string) (float64, error) {
	s.mu.Lock()
	s.durationProbes++
	s.mu.Unlock()
	return 2.5, nil
}

func (s *stubEncoder) ConcatClips(_ context.Context, clipPaths []string, outputPath string) error {
	s.mu.Lock()
	s.concatOrder = append([]string{}, clipPaths...)
	s.mu.Unlock()
	return os.WriteFile(outputPath, []byte(strings.Join(clipPaths, "\n")), 0o644)
}

func newTestService(t *testing.T, llm *stubLLM, images *stubImages, encoder *stubEncoder) *Service {
	t.Helper()
	base := t.TempDir()
	cfg := &config.VideoConfig{
		TempDir:    filepath.Join(base, "temp"),
		OutputDir:  filepath.Join(base, "videos"),
		SceneCount: 4,
	}
	svc, err := NewService(cfg, llm, images, stubSpeech{}, encoder, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

// waitGone polls until the path disappears; cleanup runs just after the
// terminal status becomes observable.
func waitGone(path string) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func waitForTerminal(svc *Service, jobID string) string {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		status, _, _ := svc.Status(jobID)
		if status != StatusProcessing {
			return status
		}
		time.Sleep(10 * time.Millisecond)
	}
	status, _, _ := svc.Status(jobID)
	return status
}

func TestService_Generate(t *testing.T) {
	Convey("Generate accepts a job and renders the video in the background", t, func() {
		llm := &stubLLM{}
		images := &stubImages{}
		encoder := &stubEncoder{}
		svc := newTestService(t, llm, images, encoder)

		jobID, err := svc.Generate(testStory, testProfile, "ko")
		So(err, ShouldBeNil)
		So(id.IsValidJobID(jobID), ShouldBeTrue)

		Convey("status transitions from processing to completed", func() {
			So(waitForTerminal(svc, jobID), ShouldEqual, StatusCompleted)

			status, downloadURL, failure := svc.Status(jobID)
			So(status, ShouldEqual, StatusCompleted)
			So(downloadURL, ShouldEqual, "/api/v1/video/download/"+jobID)
			So(failure, ShouldBeEmpty)

			Convey("the artifact exists and the work dir is gone", func() {
				_, err := os.Stat(svc.OutputPath(jobID))
				So(err, ShouldBeNil)

				So(waitGone(filepath.Join(svc.tempDir, jobID)), ShouldBeTrue)
			})

			Convey("every scene's narration duration was probed", func() {
				encoder.mu.Lock()
				probes := encoder.durationProbes
				encoder.mu.Unlock()
				So(probes, ShouldEqual, 4)
			})
		})
	})
}

func TestService_ClipOrdering(t *testing.T) {
	Convey("clips are concatenated in scene index order regardless of prompt timing", t, func() {
		// the first four llm calls after the split are the scene
		// prompters; give earlier scenes the longer delays
		llm := &stubLLM{delay: map[int]time.Duration{
			1: 80 * time.Millisecond,
			2: 40 * time.Millisecond,
			3: 20 * time.Millisecond,
			4: 0,
		}}
		images := &stubImages{}
		encoder := &stubEncoder{}
		svc := newTestService(t, llm, images, encoder)

		jobID, err := svc.Generate(testStory, testProfile, "ko")
		So(err, ShouldBeNil)
		So(waitForTerminal(svc, jobID), ShouldEqual, StatusCompleted)

		encoder.mu.Lock()
		order := encoder.concatOrder
		encoder.mu.Unlock()

		So(order, ShouldHaveLength, 4)
		for i, clip := range order {
			So(clip, ShouldEndWith, fmt.Sprintf("scene_%d.mp4", i+1))
		}
	})
}

func TestService_ContentPolicyRetry(t *testing.T) {
	Convey("a content-policy rejection is retried once with the safe prompt", t, func() {
		llm := &stubLLM{}
		images := &stubImages{rejections: 1}
		encoder := &stubEncoder{}
		svc := newTestService(t, llm, images, encoder)

		jobID, err := svc.Generate(testStory, testProfile, "ko")
		So(err, ShouldBeNil)
		So(waitForTerminal(svc, jobID), ShouldEqual, StatusCompleted)

		images.mu.Lock()
		prompts := images.prompts
		images.mu.Unlock()

		// 4 scenes plus one retry
		So(prompts, ShouldHaveLength, 5)
		So(prompts[1], ShouldEqual, storytools.SafeFallbackPrompt)
	})
}

func TestService_Failure(t *testing.T) {
	Convey("a fatal pipeline error surfaces as a failed status", t, func() {
		llm := &stubLLM{}
		// every generation attempt is rejected, so even the safe-prompt
		// retry fails
		images := &stubImages{rejections: 10}
		encoder := &stubEncoder{}
		svc := newTestService(t, llm, images, encoder)

		jobID, err := svc.Generate(testStory, testProfile, "ko")
		So(err, ShouldBeNil)
		So(waitForTerminal(svc, jobID), ShouldEqual, StatusFailed)

		status, downloadURL, failure := svc.Status(jobID)
		So(status, ShouldEqual, StatusFailed)
		So(downloadURL, ShouldBeEmpty)
		So(failure, ShouldNotBeEmpty)

		Convey("the work dir is cleaned up on failure too", func() {
			So(waitGone(filepath.Join(svc.tempDir, jobID)), ShouldBeTrue)
		})

		Convey("no partial artifact is published", func() {
			_, err := os.Stat(svc.OutputPath(jobID))
			So(os.IsNotExist(err), ShouldBeTrue)
		})
	})
}

func TestService_StatusUnknownJob(t *testing.T) {
	Convey("an unknown job id reads as still processing", t, func() {
		svc := newTestService(t, &stubLLM{}, &stubImages{}, &stubEncoder{})

		status, downloadURL, failure := svc.Status("video_999999")
		So(status, ShouldEqual, StatusProcessing)
		So(downloadURL, ShouldBeEmpty)
		So(failure, ShouldBeEmpty)
	})
}
