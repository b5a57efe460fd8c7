// Package key defines the configuration keys.
package key

// Server
const (
	ServerPort        = "server.port"
	ServerStaticDir   = "server.static_dir"
	ServerReadTimeout = "server.read_timeout"
)

// Upstream YouTube requests
const (
	UpstreamUserAgent = "upstream.user_agent"
	UpstreamTimeout   = "upstream.timeout"
)

// Downloads
const (
	DownloadMaxFileSize = "download.max_file_size"
)

// Rate limiting of API requests
const (
	RateLimitRPS   = "ratelimit.rps"
	RateLimitBurst = "ratelimit.burst"
)

// Keep alive pinger
const (
	KeepaliveURL      = "keepalive.url"
	KeepaliveInterval = "keepalive.interval"
)

// Audio conversion
const (
	AudioFFmpeg  = "audio.ffmpeg"
	AudioBitrate = "audio.bitrate"
)

// Logs
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Cli
const (
	CliColored = "cli.colored"
)
