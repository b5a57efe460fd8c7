// Package present turns raw numeric and string fields into labels for humans.
package present

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB"}

// Duration renders seconds as H:MM:SS for an hour or more, M:SS otherwise.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	rest := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, rest)
	}
	return fmt.Sprintf("%d:%02d", minutes, rest)
}

// ViewCount renders a numeric view count such as "2500000" as "2.5M views".
// Counts that do not parse are shown as zero.
func ViewCount(count string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
	if err != nil {
		n = 0
	}

	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d views", n)
	}
}

// ByteSize renders a byte count with 1024 based units and one decimal.
func ByteSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

var mimeSubtype = regexp.MustCompile(`/([a-zA-Z0-9]+)`)

// ExtensionFromMIME extracts the subtype of a MIME type, "mp4" if there is none.
func ExtensionFromMIME(mimeType string) string {
	match := mimeSubtype.FindStringSubmatch(mimeType)
	if match == nil {
		return "mp4"
	}
	return match[1]
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds an attachment filename from a video title and container.
func Filename(title, container string) string {
	if container == "" {
		container = "mp4"
	}
	return nonAlphanumeric.ReplaceAllString(title, "_") + "." + container
}
