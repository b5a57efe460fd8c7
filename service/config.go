package service

import (
	"github.com/spf13/viper"
	"youtube-downloader-web/extract"
	"youtube-downloader-web/key"
	"youtube-downloader-web/log"
	"youtube-downloader-web/network"
	"youtube-downloader-web/transcode"
)

// FromConfig builds a Service backed by YouTube from the viper settings.
// Audio downloads are only enabled when ffmpeg can be found.
func FromConfig() *Service {
	extractor := extract.New(
		network.NewClient(network.Options{UserAgent: viper.GetString(key.UpstreamUserAgent)}),
		viper.GetDuration(key.UpstreamTimeout),
	)

	opts := Options{MaxFileSize: viper.GetInt64(key.DownloadMaxFileSize)}
	ffmpeg := transcode.FFmpeg{
		Path:    viper.GetString(key.AudioFFmpeg),
		Bitrate: viper.GetString(key.AudioBitrate),
	}
	if ffmpeg.Available() {
		opts.Transcoder = ffmpeg
	} else {
		log.Debugf("%q not found, audio downloads are disabled", ffmpeg.Path)
	}

	return New(extractor, opts)
}
