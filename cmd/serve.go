package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	handler "youtube-downloader-web/api"
	"youtube-downloader-web/keepalive"
	"youtube-downloader-web/key"
	"youtube-downloader-web/log"
	"youtube-downloader-web/network"
)

const shutdownTimeout = 10 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().String("static-dir", "", "Serve the web front-end from this directory")
	lo.Must0(viper.BindPFlag(key.ServerStaticDir, serveCmd.Flags().Lookup("static-dir")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gin.SetMode(gin.ReleaseMode)

		pinger := &keepalive.Pinger{
			URL:      viper.GetString(key.KeepaliveURL),
			Interval: viper.GetDuration(key.KeepaliveInterval),
			Client:   network.NewClient(network.Options{Timeout: 30 * time.Second}),
		}
		go pinger.Run(ctx)

		server := &http.Server{
			Addr:        net.JoinHostPort("", viper.GetString(key.ServerPort)),
			Handler:     handler.FromConfig(),
			ReadTimeout: viper.GetDuration(key.ServerReadTimeout),
			// Downloads stream for as long as they take.
			WriteTimeout: 0,
			IdleTimeout:  2 * time.Minute,
		}

		errs := make(chan error, 1)
		go func() {
			log.Infof("server starting on %s", server.Addr)
			errs <- server.ListenAndServe()
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
