// Package keepalive periodically fetches a URL, typically the service's own
// health endpoint, so that hosts which idle out quiet instances keep it up.
package keepalive

import (
	"context"
	"io"
	"net/http"
	"time"

	"youtube-downloader-web/log"
)

const maxLoggedBody = 256

// Pinger fetches URL every Interval.
type Pinger struct {
	URL      string
	Interval time.Duration
	Client   *http.Client
}

// Run fetches once immediately, then on every tick until ctx is done.
func (p *Pinger) Run(ctx context.Context) {
	if p.URL == "" {
		log.Info("keepalive url not set; periodic fetcher will not run")
		return
	}

	interval := p.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.fetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Pinger) fetch(ctx context.Context) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		log.WithError(err).Error("keepalive: build request")
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			log.WithFields(log.Fields{"url": p.URL}).WithError(err).Warn("keepalive: fetch failed")
		}
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	log.WithFields(log.Fields{
		"url":    p.URL,
		"status": resp.Status,
		"body":   string(body),
	}).Debug("keepalive: fetched")
}
