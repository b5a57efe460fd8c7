// Package media holds the records passed between the extraction adapter,
// the format catalog and the HTTP layer.
package media

// Descriptor describes one stream variant as reported by the extraction
// library. A zero ContentLength means the size is unknown.
type Descriptor struct {
	Itag          int
	HasVideo      bool
	HasAudio      bool
	QualityLabel  string
	MimeType      string
	Container     string
	FPS           int
	ContentLength int64
}

// Entry is one row of the format catalog shown to the user.
type Entry struct {
	Itag            int    `json:"itag" jsonschema:"description=Format identifier used to request a download."`
	QualityLabel    string `json:"qualityLabel" jsonschema:"description=Quality label such as 720p. Unknown when the source has none."`
	MimeType        string `json:"mimeType"`
	ContentLength   string `json:"contentLength" jsonschema:"description=Size in bytes. 0 when unknown."`
	Container       string `json:"container"`
	FPS             int    `json:"fps"`
	HasAudio        bool   `json:"hasAudio"`
	ApproxSizeLabel string `json:"approxSizeLabel"`
}

// Video is the metadata of a single video fetched from the source.
type Video struct {
	ID        string
	Title     string
	Author    string
	Thumbnail string
	// Duration in seconds.
	Duration  int
	ViewCount string
	Formats   []Descriptor
}

// Info is the response of a metadata lookup.
type Info struct {
	VideoID        string  `json:"videoId"`
	Title          string  `json:"title"`
	Thumbnail      string  `json:"thumbnail"`
	Author         string  `json:"author"`
	Duration       int     `json:"duration" jsonschema:"description=Length of the video in seconds."`
	ViewCount      string  `json:"viewCount"`
	DurationLabel  string  `json:"durationLabel"`
	ViewCountLabel string  `json:"viewCountLabel"`
	Formats        []Entry `json:"formats"`
}

// ResolvedFormat carries what the download response headers need.
type ResolvedFormat struct {
	Itag          string
	MimeType      string
	Container     string
	ContentLength int64
}
