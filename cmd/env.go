package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"youtube-downloader-web/config"
	"youtube-downloader-web/style"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables that configure " + config.Name,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))

		for _, field := range config.Fields() {
			for i, env := range append([]string{field.Env()}, field.Legacy...) {
				value, set := os.LookupEnv(env)
				if setOnly && !set {
					continue
				}

				// Legacy names follow their field in another color.
				color := lo.Ternary(i == 0, style.Purple, style.Yellow)
				cmd.Printf("%s=%s\n",
					style.Fg(color)(env),
					lo.Ternary(set, style.Fg(style.Green)(value), style.Faint("unset")),
				)
			}
		}
	},
}
