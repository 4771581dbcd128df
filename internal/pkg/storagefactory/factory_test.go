package storagefactory

import (
	"context"
	"io"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
)

func TestNewStorage(t *testing.T) {
	Convey("NewStorage selects the backend from config", t, func() {
		Convey("local backend works end to end", func() {
			cfg := &config.StorageConfig{
				Type: "local",
				Local: &config.LocalConfig{
					BasePath: t.TempDir(),
					BaseURL:  "http://localhost:7080/files",
				},
			}

			s, err := NewStorage(cfg)
			So(err, ShouldBeNil)
			So(s.Type(), ShouldEqual, storage.TypeLocal)

			ctx := context.Background()
			url, err := s.Upload(ctx, "refs/a.png", strings.NewReader("png-bytes"), "image/png")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "http://localhost:7080/files/refs/a.png")

			exists, err := s.Exists(ctx, "refs/a.png")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			rc, err := s.Download(ctx, "refs/a.png")
			So(err, ShouldBeNil)
			data, err := io.ReadAll(rc)
			rc.Close()
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "png-bytes")

			So(s.Delete(ctx, "refs/a.png"), ShouldBeNil)
			// deleting again is not an error
			So(s.Delete(ctx, "refs/a.png"), ShouldBeNil)
		})

		Convey("empty type defaults to local", func() {
			cfg := &config.StorageConfig{
				Local: &config.LocalConfig{BasePath: t.TempDir(), BaseURL: "http://x"},
			}
			s, err := NewStorage(cfg)
			So(err, ShouldBeNil)
			So(s.Type(), ShouldEqual, storage.TypeLocal)
		})

		Convey("missing local config is an error", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "local"})
			So(err, ShouldNotBeNil)
		})

		Convey("missing OSS config is an error", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "oss"})
			So(err, ShouldNotBeNil)
		})

		Convey("unknown type is an error", func() {
			_, err := NewStorage(&config.StorageConfig{Type: "gcs"})
			So(err, ShouldNotBeNil)
		})
	})
}
