package video

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/model"
	"github.com/chaesu44438/emotion-theater/internal/pkg/id"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
	"github.com/chaesu44438/emotion-theater/internal/service"
	videoService "github.com/chaesu44438/emotion-theater/internal/service/video"
)

type stubLLM struct{}

func (stubLLM) Generate(_ context.Context, _, _ string, _ storytools.GenerateOptions) (string, error) {
	return "a gentle fairy tale illustration", nil
}

func (stubLLM) GenerateWithImage(_ context.Context, _, _, _ string, _ storytools.GenerateOptions) (string, error) {
	return "a gentle fairy tale illustration", nil
}

type stubImages struct{}

func (stubImages) Generate(_ context.Context, _ string) (storytools.ImageResult, error) {
	return storytools.ImageResult{Data: []byte("jpg")}, nil
}

type stubSpeech struct{}

func (stubSpeech) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return []byte("mp3"), nil
}

type stubEncoder struct{}

func (stubEncoder) EncodeSceneClip(_ context.Context, _, _, _ string) error { return nil }

func (stubEncoder) ConcatClips(_ context.Context, _ []string, _ string) error { return nil }

func (stubEncoder) AudioDuration(_ context.Context, _ string) (float64, error) { return 1, nil }

func newTestRouter(t *testing.T, storySvc *service.StoryService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := t.TempDir()
	cfg := &config.VideoConfig{
		TempDir:    filepath.Join(base, "temp"),
		OutputDir:  filepath.Join(base, "videos"),
		SceneCount: 4,
	}
	videoSvc, err := videoService.NewService(cfg, stubLLM{}, stubImages{}, stubSpeech{}, stubEncoder{}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	router := gin.New()
	router.POST("/api/v1/video/generate", NewHandler(videoSvc, storySvc).Generate)
	return router
}

func postGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/video/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate(t *testing.T) {
	Convey("Generate accepts a job and returns its id", t, func() {
		router := newTestRouter(t, nil)

		w := postGenerate(router, `{"story":"옛날 옛적에","userData":{"name":"아이","emotion":"joy"}}`)
		So(w.Code, ShouldEqual, http.StatusAccepted)

		var resp model.GenerateVideoResponse
		So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
		So(resp.Success, ShouldBeTrue)
		So(id.IsValidJobID(resp.VideoID), ShouldBeTrue)
	})

	Convey("Generate rejects a profile without name or emotion", t, func() {
		router := newTestRouter(t, nil)

		w := postGenerate(router, `{"story":"옛날 옛적에","userData":{"name":"아이"}}`)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "40002")
	})

	Convey("a story link that cannot be recorded does not fail acceptance", t, func() {
		// persistence disabled: AttachVideo errors, the job still starts
		storySvc := service.NewStoryService(stubLLM{}, stubImages{}, nil, nil)
		router := newTestRouter(t, storySvc)

		w := postGenerate(router, `{"story":"옛날 옛적에","storyId":"missing-story","userData":{"name":"아이","emotion":"joy"}}`)
		So(w.Code, ShouldEqual, http.StatusAccepted)

		var resp model.GenerateVideoResponse
		So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
		So(id.IsValidJobID(resp.VideoID), ShouldBeTrue)
	})
}
