// Package resolve maps a user selected format identifier back to the
// descriptor used for the response headers and to the stream to send.
package resolve

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/samber/lo"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/media"
)

const (
	DefaultMimeType  = "video/mp4"
	DefaultContainer = "mp4"
)

// Opener opens the byte stream of the variant identified by itag. Only
// variants carrying both audio and video qualify.
type Opener interface {
	Open(ctx context.Context, url, itag string) (io.ReadCloser, error)
}

// Format looks itag up in the full descriptor list. An unknown identifier
// yields the mp4 defaults instead of an error so that header construction
// never blocks the download.
func Format(descriptors []media.Descriptor, itag string) media.ResolvedFormat {
	resolved := media.ResolvedFormat{
		Itag:      itag,
		MimeType:  DefaultMimeType,
		Container: DefaultContainer,
	}

	d, ok := lo.Find(descriptors, func(d media.Descriptor) bool {
		return strconv.Itoa(d.Itag) == itag
	})
	if !ok {
		return resolved
	}

	if d.MimeType != "" {
		resolved.MimeType = d.MimeType
	}
	if d.Container != "" {
		resolved.Container = d.Container
	}
	resolved.ContentLength = d.ContentLength
	return resolved
}

// Resolver binds resolved formats to the stream opener.
type Resolver struct {
	opener Opener
}

func New(opener Opener) *Resolver {
	return &Resolver{opener: opener}
}

// Resolved is a resolved format whose stream has not been opened yet.
type Resolved struct {
	media.ResolvedFormat

	url    string
	opener Opener
}

// Bind resolves itag against descriptors for url.
func (r *Resolver) Bind(url string, descriptors []media.Descriptor, itag string) *Resolved {
	return &Resolved{
		ResolvedFormat: Format(descriptors, itag),
		url:            url,
		opener:         r.opener,
	}
}

// Open opens the stream. The caller must close it, also when the client
// goes away mid-transfer.
func (r *Resolved) Open(ctx context.Context) (io.ReadCloser, error) {
	stream, err := r.opener.Open(ctx, r.url, r.Itag)
	if err == nil {
		return stream, nil
	}

	wrapped := apperr.Wrap(apperr.NetworkError, err)
	var upstream *apperr.Error
	if errors.As(err, &upstream) {
		wrapped.Message = upstream.Message
		if upstream.Kind == apperr.NetworkError {
			wrapped.StatusCode = upstream.StatusCode
		}
	}
	return nil, wrapped
}
