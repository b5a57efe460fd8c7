package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/extract"
	"youtube-downloader-web/log"
)

// HandleDownload streams GET /api/download?url=...&itag=... as an
// attachment. HEAD requests only resolve the headers.
func (h *Handlers) HandleDownload(c *gin.Context) {
	h.download(c, c.Query("url"), c.Query("itag"))
}

// HandleBestVideo streams the best format carrying both audio and video.
func (h *Handlers) HandleBestVideo(c *gin.Context) {
	h.download(c, c.Query("url"), extract.Highest)
}

func (h *Handlers) download(c *gin.Context, url, itag string) {
	ctx := c.Request.Context()

	d, err := h.service.Download(ctx, url, itag)
	if err != nil {
		fail(c, "download", err)
		return
	}

	if c.Request.Method == http.MethodHead {
		setAttachment(c, d.ContentType, d.Filename)
		c.Status(http.StatusOK)
		return
	}

	stream, err := d.Open(ctx)
	if err != nil {
		fail(c, "download", err)
		return
	}
	defer stream.Close()

	setAttachment(c, d.ContentType, d.Filename)
	c.Status(http.StatusOK)

	n, err := io.Copy(c.Writer, stream)
	if err != nil {
		if !c.Writer.Written() {
			fail(c, "download", apperr.Wrap(apperr.NetworkError, err))
			return
		}
		log.WithFields(log.Fields{
			requestIDKey: c.GetString(requestIDKey),
			"itag":       d.Itag,
			"bytes":      n,
			"aborted":    ctx.Err() != nil,
		}).WithError(err).Warn("download interrupted")
	}
}

func setAttachment(c *gin.Context, contentType, filename string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
}
