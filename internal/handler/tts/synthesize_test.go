package tts

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

type stubSynthesizer struct {
	ssml  string
	audio []byte
	err   error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, ssml string) ([]byte, error) {
	s.ssml = ssml
	return s.audio, s.err
}

func newTestRouter(stub *stubSynthesizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/tts/synthesize", NewHandler(stub).Synthesize)
	return router
}

func postSynthesize(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tts/synthesize", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSynthesize(t *testing.T) {
	Convey("Synthesize returns the narrated audio", t, func() {
		stub := &stubSynthesizer{audio: []byte("mp3-bytes")}
		router := newTestRouter(stub)

		w := postSynthesize(router, `{"text":"나레이터: 옛날 옛적에 아이가 살았어요."}`)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Type"), ShouldEqual, "audio/mpeg")
		So(w.Body.String(), ShouldEqual, "mp3-bytes")

		Convey("the text was wrapped in voice markup before synthesis", func() {
			So(stub.ssml, ShouldContainSubstring, "<speak")
			So(stub.ssml, ShouldContainSubstring, `xml:lang="ko-KR"`)
			So(stub.ssml, ShouldContainSubstring, "옛날 옛적에 아이가 살았어요.")
			So(stub.ssml, ShouldNotContainSubstring, "나레이터:")
		})
	})

	Convey("Synthesize honors the language and voice preference", t, func() {
		stub := &stubSynthesizer{audio: []byte("mp3")}
		router := newTestRouter(stub)

		w := postSynthesize(router, `{"text":"Narrator: Once upon a time.","language":"en","voice":"male"}`)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(stub.ssml, ShouldContainSubstring, `xml:lang="en-US"`)
	})

	Convey("Synthesize rejects a body without text", t, func() {
		router := newTestRouter(&stubSynthesizer{})

		w := postSynthesize(router, `{"language":"ko"}`)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "40001")
	})

	Convey("Synthesize surfaces a synthesis failure", t, func() {
		router := newTestRouter(&stubSynthesizer{err: errors.New("speech service unavailable")})

		w := postSynthesize(router, `{"text":"옛날 옛적에"}`)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "50001")
	})
}
