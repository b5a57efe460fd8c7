package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"youtube-downloader-web/config"
	"youtube-downloader-web/filesystem"
	"youtube-downloader-web/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given a config directory", t, func() {
		t.Setenv(config.EnvConfigPath, filepath.Join(os.TempDir(), "ytdl-log-test"))
		viper.Reset()
		defer logrus.SetOutput(os.Stderr)

		Convey("Unknown levels fall back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Logs are written to a dated file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

			WithFields(Fields{"request_id": "r-1"}).Info("hello")

			path := filepath.Join(Dir(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"request_id":"r-1"`)
			So(string(data), ShouldContainSubstring, `"msg":"hello"`)
		})
	})
}
