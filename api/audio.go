package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"youtube-downloader-web/log"
)

// HandleAudio streams GET /api/audio?url=... converted to mp3.
func (h *Handlers) HandleAudio(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.service.Audio(ctx, c.Query("url"))
	if err != nil {
		fail(c, "audio", err)
		return
	}

	setAttachment(c, a.ContentType, a.Filename)
	c.Status(http.StatusOK)

	if err := a.Convert(ctx, c.Writer); err != nil {
		if !c.Writer.Written() {
			fail(c, "audio", err)
			return
		}
		log.WithFields(log.Fields{
			requestIDKey: c.GetString(requestIDKey),
			"aborted":    ctx.Err() != nil,
		}).WithError(err).Warn("audio conversion interrupted")
	}
}
