package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
	"youtube-downloader-web/config"
	"youtube-downloader-web/key"
	"youtube-downloader-web/log"
	"youtube-downloader-web/service"
)

// FromConfig builds the router from the viper settings.
func FromConfig() *gin.Engine {
	return NewRouter(service.FromConfig(), Options{
		StaticDir: viper.GetString(key.ServerStaticDir),
		RateLimit: rate.Limit(viper.GetFloat64(key.RateLimitRPS)),
		Burst:     viper.GetInt(key.RateLimitBurst),
	})
}

var (
	defaultOnce   sync.Once
	defaultEngine http.Handler
)

// Handler is the entry point for serverless platforms that call a plain
// http.HandlerFunc per request.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		if err := config.Setup(); err != nil {
			log.WithError(err).Warn("config: using defaults")
		}
		if err := log.Setup(); err != nil {
			log.WithError(err).Warn("log: using stderr")
		}
		defaultEngine = FromConfig()
	})
	defaultEngine.ServeHTTP(w, r)
}
