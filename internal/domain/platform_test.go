package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://youtube.com/watch?v=abc", PlatformYouTube},
		{"https://www.youtube.com/shorts/xyz", PlatformYouTube},
		{"https://youtu.be/_AbFXuGDRTs?feature=shared", PlatformYouTube},
		{"https://instagram.com/p/ABC123", PlatformInstagram},
		{"https://www.instagram.com/reel/abc/", PlatformInstagram},
		{"https://facebook.com/user/videos/123456789", PlatformFacebook},
		{"https://m.facebook.com/watch/?v=1", PlatformFacebook},
		{"https://vimeo.com/123", PlatformUnknown},
		{"https://x.com/user/status/123", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestDetectPlatform_NoURLParsing(t *testing.T) {
	// bare markers and markers outside the host still match
	assert.Equal(t, PlatformYouTube, DetectPlatform("youtu.be"))
	assert.Equal(t, PlatformInstagram, DetectPlatform("see instagram.com for details"))
	assert.Equal(t, PlatformFacebook, DetectPlatform("https://example.com/?next=facebook.com"))
}

func TestDetectPlatform_CaseSensitive(t *testing.T) {
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://YOUTUBE.COM/watch?v=abc"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://Instagram.com/p/1"))
}

func TestDetectPlatform_FirstMatchWins(t *testing.T) {
	assert.Equal(t, PlatformYouTube, DetectPlatform("https://facebook.com/share?u=https://youtube.com/watch?v=1"))
	assert.Equal(t, PlatformInstagram, DetectPlatform("https://facebook.com/l.php?u=instagram.com/p/1"))
}

func TestDetectPlatform_Idempotent(t *testing.T) {
	for _, url := range []string{"https://youtu.be/a", "https://instagram.com/p/1", "nothing"} {
		assert.Equal(t, DetectPlatform(url), DetectPlatform(url))
	}
}

func TestValidatePlatform(t *testing.T) {
	assert.True(t, ValidatePlatform(PlatformYouTube))
	assert.True(t, ValidatePlatform(PlatformInstagram))
	assert.True(t, ValidatePlatform(PlatformFacebook))
	assert.True(t, ValidatePlatform(PlatformUnknown))
	assert.False(t, ValidatePlatform("tiktok"))
	assert.False(t, ValidatePlatform(""))
}

func TestPlatformIcon(t *testing.T) {
	assert.Equal(t, "#fa0000", PlatformYouTube.Icon().Color)
	assert.Equal(t, "instagram", PlatformInstagram.Icon().Name)
	assert.Equal(t, "#0171da", PlatformFacebook.Icon().Color)
	assert.Nil(t, PlatformUnknown.Icon())
}

func TestSupportedPlatforms(t *testing.T) {
	assert.Equal(t, []Platform{PlatformYouTube, PlatformInstagram, PlatformFacebook}, SupportedPlatforms())
}
