// Package transcode converts media streams with ffmpeg.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// FFmpeg converts audio to mp3 by piping it through an ffmpeg process.
type FFmpeg struct {
	// Path of the ffmpeg binary, "ffmpeg" when empty.
	Path string
	// Bitrate passed to -ab, "192000" when empty.
	Bitrate string
}

// Args returns the ffmpeg arguments for an mp3 conversion over stdin/stdout.
func (f FFmpeg) Args() []string {
	bitrate := f.Bitrate
	if bitrate == "" {
		bitrate = "192000"
	}
	return []string{"-hide_banner", "-loglevel", "error", "-i", "pipe:0", "-f", "mp3", "-ab", bitrate, "-vn", "pipe:1"}
}

// Transcode reads from in and writes mp3 to out. Cancelling ctx kills the
// process.
func (f FFmpeg) Transcode(ctx context.Context, in io.Reader, out io.Writer) error {
	path := f.Path
	if path == "" {
		path = "ffmpeg"
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, f.Args()...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// Available reports whether the ffmpeg binary can be found.
func (f FFmpeg) Available() bool {
	path := f.Path
	if path == "" {
		path = "ffmpeg"
	}
	_, err := exec.LookPath(path)
	return err == nil
}
