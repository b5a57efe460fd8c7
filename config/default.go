package config

import (
	"sort"
	"strings"
	"time"

	"youtube-downloader-web/key"
	"youtube-downloader-web/network"
)

// Field is one configuration entry.
type Field struct {
	Key         string
	Value       any
	Description string
	// Legacy lists extra environment variables accepted for this key.
	Legacy []string
}

// Env returns the environment variable bound to the field.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default holds every known field by key.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string, legacy ...string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Legacy: legacy}
	}

	register(key.ServerPort, "8080", "Port the HTTP server listens on", "PORT")
	register(key.ServerStaticDir, "", "Directory to serve the web front-end from.\nThe embedded page is used when empty")
	register(key.ServerReadTimeout, 30*time.Second, "Read timeout for incoming requests")
	register(key.UpstreamUserAgent, network.DefaultUserAgent, "User agent sent to YouTube")
	register(key.UpstreamTimeout, time.Minute, "Timeout for metadata requests to YouTube")
	register(key.DownloadMaxFileSize, int64(2000*1024*1024), "Largest download in bytes, when the size is known upfront")
	register(key.RateLimitRPS, 5.0, "API requests allowed per second. 0 disables rate limiting")
	register(key.RateLimitBurst, 10, "Burst size of the API rate limiter")
	register(key.KeepaliveURL, "", "URL fetched periodically to keep the instance awake", "FETCH_API_URL")
	register(key.KeepaliveInterval, 5*time.Minute, "Interval between keep alive fetches")
	register(key.AudioFFmpeg, "ffmpeg", "ffmpeg binary used for mp3 conversion")
	register(key.AudioBitrate, "192000", "mp3 bitrate passed to ffmpeg")
	register(key.LogsWrite, false, "Write logs to a file in the config directory")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

// Fields returns all fields sorted by key.
func Fields() []Field {
	fields := make([]Field, 0, len(Default))
	for _, f := range Default {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
