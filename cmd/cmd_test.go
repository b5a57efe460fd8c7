package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"youtube-downloader-web/filesystem"
	"youtube-downloader-web/media"
	"youtube-downloader-web/service"
)

func init() {
	filesystem.SetMemMapFs()
}

// videoSource serves one video whose streams are built by stream.
type videoSource struct {
	stream func() io.Reader
}

func (v videoSource) Video(context.Context, string) (*media.Video, error) {
	return &media.Video{
		ID:    "abc123XYZ_-",
		Title: "Clip",
		Formats: []media.Descriptor{
			{Itag: 18, HasVideo: true, HasAudio: true, QualityLabel: "360p", MimeType: "video/mp4", Container: "mp4"},
		},
	}, nil
}

func (v videoSource) Open(context.Context, string, string) (io.ReadCloser, error) {
	return io.NopCloser(v.stream()), nil
}

func (v videoSource) OpenAudio(context.Context, string) (io.ReadCloser, *media.Video, error) {
	return nil, nil, errors.New("no audio")
}

// brokenReader fails after returning its data.
type brokenReader struct {
	data io.Reader
}

func (r brokenReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, errors.New("connection reset by peer")
	}
	return n, err
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSchema(t *testing.T) {
	Convey("Given the schema command", t, func() {
		Convey("It should describe the video info response", func() {
			out, err := run("schema")
			So(err, ShouldBeNil)

			var schema map[string]any
			So(json.Unmarshal([]byte(out), &schema), ShouldBeNil)
			props := schema["properties"].(map[string]any)
			So(props, ShouldContainKey, "videoId")
			So(props, ShouldContainKey, "formats")
			So(props, ShouldContainKey, "viewCountLabel")
		})

		Convey("It should describe error responses with --error", func() {
			out, err := run("schema", "--error")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `"statusCode"`)
			So(out, ShouldContainSubstring, `"message"`)
		})
	})
}

func TestEnv(t *testing.T) {
	Convey("Given the env command", t, func() {
		t.Setenv("YTDL_SERVER_PORT", "9090")

		Convey("It should list set and unset variables", func() {
			out, err := run("env", "--set-only=false")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "YTDL_SERVER_PORT")
			So(out, ShouldContainSubstring, "9090")
			So(out, ShouldContainSubstring, "FETCH_API_URL")
		})
	})
}

func TestPrintInfo(t *testing.T) {
	Convey("Given video info", t, func() {
		info := &media.Info{
			Title:          "Song",
			Author:         "Artist",
			DurationLabel:  "3:32",
			ViewCountLabel: "1.5M views",
			Formats: []media.Entry{
				{Itag: 22, QualityLabel: "720p", FPS: 30, HasAudio: true, ApproxSizeLabel: "12.0 MB"},
				{Itag: 18, QualityLabel: "360p", FPS: 30, ApproxSizeLabel: "4.0 MB"},
			},
		}

		Convey("It should print a row per format", func() {
			var out bytes.Buffer
			printInfo(&out, info)
			So(out.String(), ShouldContainSubstring, "Song")
			So(out.String(), ShouldContainSubstring, "Artist")
			So(out.String(), ShouldContainSubstring, "720p")
			So(out.String(), ShouldContainSubstring, "12.0 MB")
			So(bytes.Count(out.Bytes(), []byte("\n")), ShouldEqual, 6)
		})

		Convey("It should label picker options with their itag", func() {
			So(formatOption(info.Formats[1]), ShouldEqual, "360p 30fps (4.0 MB, no audio) [18]")
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Given a resolved download", t, func() {
		ctx := context.Background()
		fs := filesystem.API()

		download := func(stream func() io.Reader) *service.Download {
			d, err := service.New(videoSource{stream: stream}, service.Options{}).
				Download(ctx, "https://youtu.be/abc123XYZ_-", "18")
			So(err, ShouldBeNil)
			return d
		}

		Convey("The stream is written to the output file", func() {
			d := download(func() io.Reader { return strings.NewReader("video-bytes") })
			n, err := save(ctx, d, "clip.mp4")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, int64(11))

			data, err := fs.ReadFile("clip.mp4")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "video-bytes")
		})

		Convey("A failed transfer leaves no partial file", func() {
			d := download(func() io.Reader { return brokenReader{data: strings.NewReader("partial")} })
			_, err := save(ctx, d, "broken.mp4")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "connection reset by peer")

			exists, err := fs.Exists("broken.mp4")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
