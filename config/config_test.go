package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"youtube-downloader-web/filesystem"
	"youtube-downloader-web/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		dir := filepath.Join(os.TempDir(), "ytdl-config-test")
		t.Setenv(EnvConfigPath, dir)
		t.Setenv("PORT", "")
		t.Setenv("YTDL_SERVER_PORT", "")
		viper.Reset()
		So(filesystem.API().MkdirAll(dir, 0o755), ShouldBeNil)

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ServerPort), ShouldEqual, "8080")
			So(viper.GetDuration(key.KeepaliveInterval), ShouldEqual, 5*time.Minute)
			So(viper.GetInt64(key.DownloadMaxFileSize), ShouldEqual, int64(2000*1024*1024))
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Should read the config file", func() {
			err := filesystem.API().WriteFile(filepath.Join(dir, "ytdl.toml"), []byte("[server]\nport = \"9000\"\n"), 0o644)
			So(err, ShouldBeNil)
			defer filesystem.API().Remove(filepath.Join(dir, "ytdl.toml"))

			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.ServerPort), ShouldEqual, "9000")
		})

		Convey("Should honour prefixed and legacy environment variables", func() {
			t.Setenv("FETCH_API_URL", "https://example.com/ping")
			t.Setenv("YTDL_RATELIMIT_BURST", "3")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.KeepaliveURL), ShouldEqual, "https://example.com/ping")
			So(viper.GetInt(key.RateLimitBurst), ShouldEqual, 3)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field.Env", t, func() {
		So(Default[key.ServerPort].Env(), ShouldEqual, "YTDL_SERVER_PORT")
		So(Default[key.ServerPort].Legacy, ShouldResemble, []string{"PORT"})
		So(EnvKeyReplacer.Replace("download.max_file_size"), ShouldEqual, "download_max_file_size")
		So(len(Fields()), ShouldEqual, len(Default))
	})
}
