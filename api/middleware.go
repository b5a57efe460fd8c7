package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/log"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			requestIDKey: c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"bytes":      c.Writer.Size(),
			"latency":    time.Since(start).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request")
		} else {
			entry.Info("request")
		}
	}
}

// rateLimit shares one token bucket between all clients.
func rateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			p := apperr.From(apperr.New(apperr.RateLimited))
			c.AbortWithStatusJSON(p.StatusCode, p)
			return
		}
		c.Next()
	}
}

// fail logs err and writes the uniform error payload, unless the response
// has already started.
func fail(c *gin.Context, op string, err error) {
	p := apperr.From(err)
	entry := log.WithFields(log.Fields{
		requestIDKey: c.GetString(requestIDKey),
		"op":         op,
		"code":       p.Code,
		"status":     p.StatusCode,
	}).WithError(err)
	if p.StatusCode >= 500 {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}

	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.Writer.Header().Del("Content-Type")
	c.Writer.Header().Del("Content-Disposition")
	c.AbortWithStatusJSON(p.StatusCode, p)
}
