package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		url string
		id  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://example.com/not-a-video", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.id, ExtractYouTubeID(tt.url), "url %q", tt.url)
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", EmbedURL("dQw4w9WgXcQ"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"PT15M30S", "15m 30s"},
		{"PT1H2M3S", "1h 2m 3s"},
		{"PT45S", "45s"},
		{"PT2H", "2h"},
		{"PT", "0s"},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, FormatDuration(tt.in), "duration %q", tt.in)
	}
}
