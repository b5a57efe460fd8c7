// Package cmd implements the command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"youtube-downloader-web/apperr"
	"youtube-downloader-web/config"
	"youtube-downloader-web/key"
	"youtube-downloader-web/log"
	"youtube-downloader-web/style"
)

var rootCmd = &cobra.Command{
	Use:   config.Name,
	Short: "Look up YouTube video formats and download them",
	Long: `Look up YouTube video formats and download them.

Without a subcommand the web server is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(serveCmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Debug(err)
	msg := err.Error()
	if apperr.From(err).Code != apperr.UnknownError {
		msg = apperr.From(err).Message
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.Red)("error:"), strings.TrimSpace(msg))
	os.Exit(1)
}
