package utils

import (
	"fmt"
	"regexp"
)

var (
	videoIDPattern  = regexp.MustCompile(`(?:v=|youtu\.be/|embed/)([A-Za-z0-9_-]{11})`)
	durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

// ExtractYouTubeID pulls the 11-character video id out of a watch, share or
// embed URL. Returns "" when the URL carries no recognizable id.
func ExtractYouTubeID(url string) string {
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// EmbedURL builds the iframe-embeddable URL for a video id.
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
}

// FormatDuration renders an ISO 8601 duration such as PT15M30S as "15m 30s".
// Unparseable input is returned unchanged.
func FormatDuration(duration string) string {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return duration
	}

	out := ""
	units := []string{"h", "m", "s"}
	for i, unit := range units {
		if match[i+1] != "" {
			if out != "" {
				out += " "
			}
			out += match[i+1] + unit
		}
	}
	if out == "" {
		return "0s"
	}
	return out
}
