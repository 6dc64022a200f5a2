package domain

import "strings"

// Platform represents the source platform of a video URL
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformUnknown   Platform = "unknown"
)

// platformRule maps a URL marker to the platform it identifies
type platformRule struct {
	marker   string
	platform Platform
}

// platformRules are evaluated in order; the first match wins.
var platformRules = []platformRule{
	{marker: "youtu.be", platform: PlatformYouTube},
	{marker: "youtube.com", platform: PlatformYouTube},
	{marker: "instagram.com", platform: PlatformInstagram},
	{marker: "facebook.com", platform: PlatformFacebook},
}

// DetectPlatform classifies a URL by case-sensitive substring match.
// It never parses the URL, so anything containing a marker is accepted.
func DetectPlatform(url string) Platform {
	for _, rule := range platformRules {
		if strings.Contains(url, rule.marker) {
			return rule.platform
		}
	}
	return PlatformUnknown
}

// ValidatePlatform checks if a platform is valid
func ValidatePlatform(platform Platform) bool {
	switch platform {
	case PlatformYouTube, PlatformInstagram, PlatformFacebook, PlatformUnknown:
		return true
	}
	return false
}

// SupportedPlatforms returns the platforms the detector can name, in detection order
func SupportedPlatforms() []Platform {
	return []Platform{PlatformYouTube, PlatformInstagram, PlatformFacebook}
}

// Icon is the brand icon shown next to a detected platform
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Icon returns display metadata for the platform. Unknown platforms have no icon.
func (p Platform) Icon() *Icon {
	switch p {
	case PlatformYouTube:
		return &Icon{Name: "youtube", Color: "#fa0000"}
	case PlatformInstagram:
		return &Icon{Name: "instagram", Color: "#E1306C"}
	case PlatformFacebook:
		return &Icon{Name: "facebook", Color: "#0171da"}
	}
	return nil
}
