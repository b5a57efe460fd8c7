// Package service implements the metadata lookup and download operations.
package service

import (
	"context"
	"io"
	"strings"

	"youtube-downloader-web/apperr"
	"youtube-downloader-web/catalog"
	"youtube-downloader-web/extract"
	"youtube-downloader-web/media"
	"youtube-downloader-web/present"
	"youtube-downloader-web/resolve"
)

const unknownAuthor = "Unknown"

// Extractor fetches metadata and opens streams for canonical video URLs.
type Extractor interface {
	resolve.Opener
	Video(ctx context.Context, url string) (*media.Video, error)
	OpenAudio(ctx context.Context, url string) (io.ReadCloser, *media.Video, error)
}

// Transcoder converts an audio stream to mp3.
type Transcoder interface {
	Transcode(ctx context.Context, in io.Reader, out io.Writer) error
}

type Options struct {
	// MaxFileSize rejects downloads whose size is known to be larger.
	// Zero disables the check.
	MaxFileSize int64
	// Transcoder enables audio downloads when set.
	Transcoder Transcoder
}

// Service is safe for concurrent use; requests share no state.
type Service struct {
	extractor Extractor
	resolver  *resolve.Resolver
	opts      Options
}

func New(extractor Extractor, opts Options) *Service {
	return &Service{
		extractor: extractor,
		resolver:  resolve.New(extractor),
		opts:      opts,
	}
}

// target validates user input and returns the canonical URL and video id.
func target(raw string) (url, id string, err error) {
	if strings.TrimSpace(raw) == "" {
		return "", "", apperr.New(apperr.InvalidURL)
	}

	id, err = extract.VideoID(raw)
	if err != nil {
		return "", "", err
	}
	return extract.Canonicalize(raw), id, nil
}

// Info looks up a video and builds its format catalog.
func (s *Service) Info(ctx context.Context, rawURL string) (*media.Info, error) {
	url, id, err := target(rawURL)
	if err != nil {
		return nil, err
	}

	v, err := s.extractor.Video(ctx, url)
	if err != nil {
		return nil, extract.Classify(err)
	}

	formats, err := catalog.Build(v.Formats)
	if err != nil {
		return nil, err
	}

	author := v.Author
	if author == "" {
		author = unknownAuthor
	}

	return &media.Info{
		VideoID:        id,
		Title:          v.Title,
		Thumbnail:      v.Thumbnail,
		Author:         author,
		Duration:       v.Duration,
		ViewCount:      v.ViewCount,
		DurationLabel:  present.Duration(v.Duration),
		ViewCountLabel: present.ViewCount(v.ViewCount),
		Formats:        formats,
	}, nil
}

// Download is a resolved download whose stream is still closed.
type Download struct {
	*resolve.Resolved

	Title       string
	Filename    string
	ContentType string
}

// Download resolves the response headers for itag. The stream is opened
// separately with Download.Open once the headers are ready.
func (s *Service) Download(ctx context.Context, rawURL, itag string) (*Download, error) {
	if strings.TrimSpace(itag) == "" {
		return nil, apperr.New(apperr.InvalidURL)
	}

	url, _, err := target(rawURL)
	if err != nil {
		return nil, err
	}

	v, err := s.extractor.Video(ctx, url)
	if err != nil {
		return nil, extract.Classify(err)
	}

	resolved := s.resolver.Bind(url, v.Formats, strings.TrimSpace(itag))
	if s.opts.MaxFileSize > 0 && resolved.ContentLength > s.opts.MaxFileSize {
		return nil, apperr.New(apperr.FileTooLarge)
	}

	return &Download{
		Resolved:    resolved,
		Title:       v.Title,
		Filename:    present.Filename(v.Title, resolved.Container),
		ContentType: resolved.MimeType,
	}, nil
}

// AudioDownload is an open audio stream waiting to be converted.
type AudioDownload struct {
	Filename    string
	ContentType string

	stream     io.ReadCloser
	transcoder Transcoder
}

// Audio opens the best audio stream of a video for mp3 conversion.
func (s *Service) Audio(ctx context.Context, rawURL string) (*AudioDownload, error) {
	url, _, err := target(rawURL)
	if err != nil {
		return nil, err
	}

	if s.opts.Transcoder == nil {
		return nil, apperr.New(apperr.FormatUnavailable)
	}

	stream, v, err := s.extractor.OpenAudio(ctx, url)
	if err != nil {
		return nil, extract.Classify(err)
	}

	return &AudioDownload{
		Filename:    present.Filename(v.Title, "mp3"),
		ContentType: "audio/mpeg",
		stream:      stream,
		transcoder:  s.opts.Transcoder,
	}, nil
}

// Convert transcodes the stream into w and closes it.
func (a *AudioDownload) Convert(ctx context.Context, w io.Writer) error {
	defer a.stream.Close()

	if err := a.transcoder.Transcode(ctx, a.stream, w); err != nil {
		return apperr.Wrap(apperr.NetworkError, err)
	}
	return nil
}
