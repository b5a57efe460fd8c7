// Package extract adapts github.com/kkdai/youtube to the media types used by
// the rest of the application.
package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/media"
	"youtube-downloader-web/present"
)

// Selectors accepted by Open besides numeric itags.
const (
	Highest = "highest"
	Lowest  = "lowest"
)

const watchURL = "https://www.youtube.com/watch?v="

var validHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"gaming.youtube.com":       true,
	"youtu.be":                 true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// youtubeClient is the subset of *youtube.Client used here.
type youtubeClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Client fetches metadata and opens streams.
type Client struct {
	yt              youtubeClient
	metadataTimeout time.Duration
}

// New returns a Client that issues requests through httpClient. Metadata
// lookups are bounded by metadataTimeout, streams only by their context.
func New(httpClient *http.Client, metadataTimeout time.Duration) *Client {
	return &Client{
		yt:              &youtube.Client{HTTPClient: httpClient},
		metadataTimeout: metadataTimeout,
	}
}

func (c *Client) video(ctx context.Context, url string) (*youtube.Video, error) {
	if c.metadataTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.metadataTimeout)
		defer cancel()
	}
	return c.yt.GetVideoContext(ctx, url)
}

// Canonicalize rewrites anything a video id can be extracted from into
// the canonical watch URL. Input it cannot make sense of is returned as is.
func Canonicalize(raw string) string {
	id, err := youtube.ExtractVideoID(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return watchURL + id
}

// VideoID validates url and returns the id of the video it points to.
// Bare video ids are accepted; URLs must point at a YouTube host.
func VideoID(url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", apperr.New(apperr.InvalidURL)
	}

	if u, err := neturl.Parse(url); err == nil && u.Host != "" && !validHosts[strings.ToLower(u.Hostname())] {
		return "", apperr.New(apperr.InvalidURL)
	}

	id, err := youtube.ExtractVideoID(url)
	if err != nil {
		e := apperr.New(apperr.InvalidURL)
		e.Err = err
		return "", e
	}
	return id, nil
}

// Video fetches the metadata of the video at url.
func (c *Client) Video(ctx context.Context, url string) (*media.Video, error) {
	v, err := c.video(ctx, url)
	if err != nil {
		return nil, Classify(err)
	}

	return &media.Video{
		ID:        v.ID,
		Title:     v.Title,
		Author:    v.Author,
		Thumbnail: lo.LastOr(v.Thumbnails, youtube.Thumbnail{}).URL,
		Duration:  int(v.Duration.Seconds()),
		ViewCount: strconv.Itoa(v.Views),
		Formats:   lo.Map(v.Formats, func(f youtube.Format, _ int) media.Descriptor { return descriptor(f) }),
	}, nil
}

// Open streams the progressive (audio and video) variant picked by
// selector, which is an itag or one of Highest and Lowest.
func (c *Client) Open(ctx context.Context, url, selector string) (io.ReadCloser, error) {
	v, err := c.video(ctx, url)
	if err != nil {
		return nil, Classify(err)
	}

	format, ok := pick(v.Formats, selector).Get()
	if !ok {
		return nil, apperr.Wrap(apperr.NetworkError, fmt.Errorf("no such format found: %s", selector))
	}

	stream, _, err := c.yt.GetStreamContext(ctx, v, &format)
	if err != nil {
		return nil, Classify(err)
	}
	return stream, nil
}

// OpenAudio streams the audio only variant with the highest bitrate.
func (c *Client) OpenAudio(ctx context.Context, url string) (io.ReadCloser, *media.Video, error) {
	v, err := c.video(ctx, url)
	if err != nil {
		return nil, nil, Classify(err)
	}

	format, ok := bestAudio(v.Formats).Get()
	if !ok {
		return nil, nil, apperr.New(apperr.FormatUnavailable)
	}

	stream, _, err := c.yt.GetStreamContext(ctx, v, &format)
	if err != nil {
		return nil, nil, Classify(err)
	}
	return stream, &media.Video{ID: v.ID, Title: v.Title, Author: v.Author}, nil
}

func descriptor(f youtube.Format) media.Descriptor {
	var container string
	if f.MimeType != "" {
		container = present.ExtensionFromMIME(f.MimeType)
	}

	return media.Descriptor{
		Itag:          f.ItagNo,
		HasVideo:      hasVideo(f),
		HasAudio:      f.AudioChannels > 0,
		QualityLabel:  f.QualityLabel,
		MimeType:      f.MimeType,
		Container:     container,
		FPS:           f.FPS,
		ContentLength: f.ContentLength,
	}
}

func hasVideo(f youtube.Format) bool {
	return strings.HasPrefix(f.MimeType, "video/") || f.Width > 0 || f.Height > 0
}

// pick returns the progressive format matching selector.
func pick(formats youtube.FormatList, selector string) mo.Option[youtube.Format] {
	progressive := lo.Filter(formats.WithAudioChannels(), func(f youtube.Format, _ int) bool {
		return hasVideo(f)
	})
	if len(progressive) == 0 {
		return mo.None[youtube.Format]()
	}

	switch selector {
	case Highest, Lowest:
		slices.SortStableFunc(progressive, func(a, b youtube.Format) int {
			return b.Height*1000 + b.FPS - (a.Height*1000 + a.FPS)
		})
		if selector == Highest {
			return mo.Some(progressive[0])
		}
		return mo.Some(progressive[len(progressive)-1])
	}

	// Same textual match as resolve.Format, so "043" never opens itag 43.
	f, ok := lo.Find(progressive, func(f youtube.Format) bool { return strconv.Itoa(f.ItagNo) == selector })
	if !ok {
		return mo.None[youtube.Format]()
	}
	return mo.Some(f)
}

func bestAudio(formats youtube.FormatList) mo.Option[youtube.Format] {
	audio := lo.Filter(formats.Type("audio"), func(f youtube.Format, _ int) bool {
		return !hasVideo(f)
	})
	if len(audio) == 0 {
		return mo.None[youtube.Format]()
	}

	return mo.Some(lo.MaxBy(audio, func(a, b youtube.Format) bool {
		return a.Bitrate > b.Bitrate
	}))
}
