// Package network provides the HTTP client used to talk to YouTube.
package network

import (
	"net/http"
	"time"
)

// DefaultUserAgent is sent when no user agent is configured. Some upstream
// endpoints answer differently to clients that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options tune the client returned by NewClient.
type Options struct {
	UserAgent string
	// Timeout bounds whole requests, body included. Leave it zero for
	// clients that stream downloads.
	Timeout time.Duration
}

// NewClient returns a client with a pooled transport that stamps browser
// headers on every request.
func NewClient(opts Options) *http.Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &headerTransport{
			base: newTransport(),
			headers: map[string]string{
				"User-Agent": ua,
				"Accept":     "*/*",
				"Connection": "keep-alive",
			},
		},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(req)
}
