package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"youtube-downloader-web/apperr"
)

type infoRequest struct {
	URL string `json:"url"`
}

// HandleVideoInfo answers POST {"url": ...} with the video metadata and
// its format catalog.
func (h *Handlers) HandleVideoInfo(c *gin.Context) {
	var req infoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "video-info", apperr.New(apperr.InvalidURL))
		return
	}

	info, err := h.service.Info(c.Request.Context(), req.URL)
	if err != nil {
		fail(c, "video-info", err)
		return
	}

	c.JSON(http.StatusOK, info)
}
