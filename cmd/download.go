package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"youtube-downloader-web/filesystem"
	"youtube-downloader-web/media"
	"youtube-downloader-web/present"
	"youtube-downloader-web/service"
	"youtube-downloader-web/style"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringP("itag", "i", "", "Format to download. Asks when not set")
	downloadCmd.Flags().StringP("output", "o", "", "Output file. Defaults to the video title")
}

var downloadCmd = &cobra.Command{
	Use:     "download <url>",
	Short:   "Download a video in the chosen format",
	Example: "ytdl download https://youtu.be/dQw4w9WgXcQ --itag 18",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		svc := service.FromConfig()

		itag := lo.Must(cmd.Flags().GetString("itag"))
		if itag == "" {
			picked, err := pickFormat(ctx, svc, args[0])
			if err != nil {
				return err
			}
			itag = picked
		}

		d, err := svc.Download(ctx, args[0], itag)
		if err != nil {
			return err
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			output = d.Filename
		}

		n, err := save(ctx, d, output)
		if err != nil {
			return err
		}

		cmd.Printf("%s %s to %s (%s)\n", style.Fg(style.Green)("saved"), style.Fg(style.Cyan)(d.Title), output, present.ByteSize(n))
		return nil
	},
}

// save writes the download to output. A partially written file is removed.
func save(ctx context.Context, d *service.Download, output string) (int64, error) {
	stream, err := d.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	fs := filesystem.API()
	file, err := fs.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", output, err)
	}

	n, err := io.Copy(file, stream)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(output)
		return n, fmt.Errorf("write %s: %w", output, err)
	}
	return n, nil
}

// pickFormat asks the user to choose one of the catalog entries.
func pickFormat(ctx context.Context, svc *service.Service, url string) (string, error) {
	info, err := svc.Info(ctx, url)
	if err != nil {
		return "", err
	}

	options := lo.Map(info.Formats, func(f media.Entry, _ int) string { return formatOption(f) })
	var choice int
	prompt := &survey.Select{
		Message: info.Title,
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}

	return strconv.Itoa(info.Formats[choice].Itag), nil
}
