package utils

import (
	"net/url"
	"strings"
)

// YouTubeVideoID extracts the video id from the usual YouTube URL shapes
// (watch?v=, youtu.be/, embed/, shorts/). Returns "" when none is found.
func YouTubeVideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		for _, prefix := range []string{"/embed/", "/shorts/"} {
			if strings.HasPrefix(u.Path, prefix) {
				rest := strings.TrimPrefix(u.Path, prefix)
				if i := strings.IndexByte(rest, '/'); i >= 0 {
					rest = rest[:i]
				}
				return rest
			}
		}
	}
	return ""
}

// YouTubeThumbnail derives the standard thumbnail URL for a YouTube video
// URL, or "" when the video id cannot be determined.
func YouTubeThumbnail(rawURL string) string {
	id := YouTubeVideoID(rawURL)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// AllowedHost reports whether rawURL points at one of the allowed hostnames.
func AllowedHost(rawURL string, hosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	for _, h := range hosts {
		if strings.EqualFold(host, h) {
			return true
		}
	}
	return false
}
