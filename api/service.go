package handler

import (
	"context"

	"youtube-downloader-web/media"
	"youtube-downloader-web/service"
)

// Service is what the handlers need from the downloader.
type Service interface {
	Info(ctx context.Context, url string) (*media.Info, error)
	Download(ctx context.Context, url, itag string) (*service.Download, error)
	Audio(ctx context.Context, url string) (*service.AudioDownload, error)
}
