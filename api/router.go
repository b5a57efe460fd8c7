// Package handler exposes the downloader over HTTP.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/web"
)

// Options configure the router.
type Options struct {
	// StaticDir overrides the embedded front-end.
	StaticDir string
	// RateLimit is the number of API requests allowed per second across all
	// clients. Zero disables limiting.
	RateLimit rate.Limit
	Burst     int
}

// Handlers serves the API on top of a Service.
type Handlers struct {
	service Service
}

// NewRouter returns the gin engine serving the API and the front-end.
func NewRouter(svc Service, opts Options) *gin.Engine {
	h := &Handlers{service: svc}
	limit := rateLimit(opts.RateLimit, opts.Burst)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog())

	api := engine.Group("/api", limit)
	api.GET("/health", h.HandleHealth)
	api.POST("/video-info", h.HandleVideoInfo)
	api.GET("/download", h.HandleDownload)
	api.HEAD("/download", h.HandleDownload)
	api.GET("/audio", h.HandleAudio)

	// Routes kept for existing clients.
	engine.GET("/ytmp4", limit, h.HandleBestVideo)
	engine.GET("/ytm3", limit, h.HandleAudio)

	files := web.FileServer(opts.StaticDir)
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, apperr.Payload{
				Message:    "Not found",
				Code:       apperr.UnknownError,
				StatusCode: http.StatusNotFound,
			})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})

	return engine
}

// HandleHealth reports that the process is up.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
