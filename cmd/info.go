package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"youtube-downloader-web/media"
	"youtube-downloader-web/service"
	"youtube-downloader-web/style"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolP("json", "j", false, "Print the response as JSON")
}

var infoCmd = &cobra.Command{
	Use:     "info <url>",
	Short:   "Show a video and the formats it can be downloaded in",
	Example: "ytdl info https://youtu.be/dQw4w9WgXcQ",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := service.FromConfig().Info(context.Background(), args[0])
		if err != nil {
			return err
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		printInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func printInfo(w io.Writer, info *media.Info) {
	fmt.Fprintln(w, style.Bold(info.Title))
	fmt.Fprintln(w, style.Faint(fmt.Sprintf("%s · %s · %s", info.Author, info.DurationLabel, info.ViewCountLabel)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, style.Bold(row("ITAG", "QUALITY", "FPS", "SIZE", "AUDIO")))
	for _, f := range info.Formats {
		fmt.Fprintln(w, row(
			style.Fg(style.Purple)(strconv.Itoa(f.Itag)),
			f.QualityLabel,
			strconv.Itoa(f.FPS),
			f.ApproxSizeLabel,
			lo.Ternary(f.HasAudio, style.Fg(style.Green)("yes"), style.Fg(style.Red)("no")),
		))
	}
}

func row(itag, quality, fps, size, audio string) string {
	return style.Padded(itag, 6) + style.Padded(quality, 10) + style.Padded(fps, 5) + style.Padded(size, 11) + audio
}

// formatOption is the label shown for an entry in the interactive picker.
func formatOption(f media.Entry) string {
	audio := lo.Ternary(f.HasAudio, "", ", no audio")
	return fmt.Sprintf("%s %dfps (%s%s) [%d]", f.QualityLabel, f.FPS, f.ApproxSizeLabel, audio, f.Itag)
}
