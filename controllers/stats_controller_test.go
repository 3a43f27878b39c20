package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type stubCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (s *stubCounter) Count(_ context.Context, collection string, filter interface{}) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := filter.(bson.M); ok && len(f) > 0 {
		// Filtered counts (unpublished blogs, pending invites) report half.
		return s.counts[collection] / 2, nil
	}
	return s.counts[collection], nil
}

func newStatsApp(counter StatsCounter) *fiber.App {
	app := fiber.New()
	app.Get("/api/admin/stats", NewStatsController(counter).Get)
	return app
}

func TestStatsAggregatesAllCollections(t *testing.T) {
	counter := &stubCounter{counts: map[string]int64{
		"blogs":          10,
		"banners":        3,
		"businesses":     4,
		"events":         5,
		"faqs":           6,
		"media":          7,
		"reviews":        8,
		"review_invites": 2,
	}}
	app := newStatsApp(counter)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	for key, want := range map[string]float64{
		"blogs":             10,
		"unpublished_blogs": 5,
		"banners":           3,
		"businesses":        4,
		"events":            5,
		"faqs":              6,
		"media":             7,
		"reviews":           8,
		"pending_invites":   1,
	} {
		if got := data[key]; got != want {
			t.Errorf("%s = %v, want %v", key, got, want)
		}
	}
}

func TestStatsFailsClosed(t *testing.T) {
	app := newStatsApp(&stubCounter{err: errors.New("connection reset")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
