// Package catalog turns the raw stream variants of a video into the ranked
// list of formats offered for download.
package catalog

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/media"
	"youtube-downloader-web/present"
)

const (
	defaultFPS     = 30
	unknownQuality = "Unknown"
)

// tier is one filtering policy. Tiers are tried in order and the first one
// that keeps anything wins.
type tier struct {
	name  string
	keep  func(media.Descriptor) bool
	entry func(media.Descriptor) media.Entry
}

var tiers = []tier{
	{
		name: "strict",
		keep: func(d media.Descriptor) bool {
			return d.HasVideo && d.QualityLabel != "" && strings.Contains(d.MimeType, "video/mp4")
		},
		entry: func(d media.Descriptor) media.Entry {
			return newEntry(d, d.QualityLabel)
		},
	},
	{
		name: "relaxed",
		keep: func(d media.Descriptor) bool {
			return d.HasVideo
		},
		entry: func(d media.Descriptor) media.Entry {
			return newEntry(d, lo.Ternary(d.QualityLabel != "", d.QualityLabel, unknownQuality))
		},
	},
}

// newEntry normalizes every entry to mp4, whatever the source says.
func newEntry(d media.Descriptor, quality string) media.Entry {
	return media.Entry{
		Itag:            d.Itag,
		QualityLabel:    quality,
		MimeType:        "video/mp4",
		ContentLength:   strconv.FormatInt(max(d.ContentLength, 0), 10),
		Container:       "mp4",
		FPS:             lo.Ternary(d.FPS > 0, d.FPS, defaultFPS),
		HasAudio:        d.HasAudio,
		ApproxSizeLabel: present.ByteSize(d.ContentLength),
	}
}

// Build filters, normalizes and ranks descriptors. It fails with
// FormatUnavailable rather than return an empty catalog.
func Build(descriptors []media.Descriptor) ([]media.Entry, error) {
	entries, _ := build(descriptors)
	if len(entries) == 0 {
		return nil, apperr.New(apperr.FormatUnavailable)
	}
	return entries, nil
}

// build returns the ranked entries and the name of the tier that produced them.
func build(descriptors []media.Descriptor) ([]media.Entry, string) {
	for _, t := range tiers {
		kept := lo.Filter(descriptors, func(d media.Descriptor, _ int) bool {
			return t.keep(d)
		})
		if len(kept) == 0 {
			continue
		}

		entries := lo.Map(kept, func(d media.Descriptor, _ int) media.Entry {
			return t.entry(d)
		})
		slices.SortStableFunc(entries, func(a, b media.Entry) int {
			return cmp.Compare(Quality(b.QualityLabel), Quality(a.QualityLabel))
		})
		return entries, t.name
	}

	return nil, ""
}

var leadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)

// Quality parses the leading integer of a quality label, "720p60" is 720.
// Labels without one rank as 0.
func Quality(label string) int {
	match := leadingInt.FindStringSubmatch(label)
	if match == nil {
		return 0
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}
