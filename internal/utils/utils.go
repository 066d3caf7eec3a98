package utils

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// FormatFileSize estimates how large a ten second clip at the given bitrate
// (bits per second) would be. Zero or missing bitrate means the size is unknown.
func FormatFileSize(bitrate int) string {
	if bitrate <= 0 {
		return "Unknown"
	}

	bytes := float64(bitrate) * 10 / 8
	if bytes >= 1_000_000 {
		return fmt.Sprintf("~%.1f MB/10s", bytes/1_000_000)
	}

	return fmt.Sprintf("~%d KB/10s", int(math.Round(bytes/1000)))
}

func FormatSecondsToMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

func SanitizeFileName(name string) string {
	// Replace invalid Windows characters with underscores
	re := regexp.MustCompile(`[\/\?<>\\:\*\|"]`)

	return re.ReplaceAllString(name, "_")
}

// DownloadFileName builds an attachment name that embeds the quality label and
// the current timestamp so repeated downloads never collide.
func DownloadFileName(quality string, ts time.Time) string {
	if quality == "" {
		quality = "source"
	}

	return fmt.Sprintf("x-video-%s-%d.mp4", SanitizeFileName(quality), ts.Unix())
}
