package utils

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc123&t=10s", "abc123"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/xyz789", "xyz789"},
		{"https://www.youtube.com/shorts/short1/extra", "short1"},
		{"https://m.youtube.com/watch?v=mob1", "mob1"},
		{"https://vimeo.com/12345", ""},
		{"not a url at all ://", ""},
	}

	for _, tc := range cases {
		if got := YouTubeVideoID(tc.url); got != tc.want {
			t.Errorf("YouTubeVideoID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	got := YouTubeThumbnail("https://youtu.be/dQw4w9WgXcQ")
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
	if got != want {
		t.Errorf("YouTubeThumbnail = %q, want %q", got, want)
	}

	if got := YouTubeThumbnail("https://vimeo.com/12345"); got != "" {
		t.Errorf("expected empty thumbnail for non-YouTube URL, got %q", got)
	}
}

func TestAllowedHost(t *testing.T) {
	hosts := []string{"res.cloudinary.com", "img.youtube.com"}

	if !AllowedHost("https://res.cloudinary.com/demo/image/upload/x.jpg", hosts) {
		t.Error("expected cloudinary host to be allowed")
	}
	if !AllowedHost("https://IMG.YOUTUBE.COM/vi/x/hqdefault.jpg", hosts) {
		t.Error("expected host match to be case-insensitive")
	}
	if AllowedHost("https://evil.example.com/x.jpg", hosts) {
		t.Error("expected unknown host to be rejected")
	}
}
