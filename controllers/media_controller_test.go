package controllers

import (
	"context"
	"net/http"
	"testing"

	"portfolio-api/models"
	"portfolio-api/store"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubMediaStore struct {
	items []models.Media
}

func (s *stubMediaStore) List(_ context.Context, f store.MediaFilter) ([]models.Media, int64, error) {
	var out []models.Media
	for _, m := range s.items {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (s *stubMediaStore) GetByID(_ context.Context, id primitive.ObjectID) (models.Media, error) {
	for _, m := range s.items {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Media{}, store.ErrNotFound
}

func (s *stubMediaStore) Insert(_ context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	s.items = append(s.items, *media)
	return nil
}

func (s *stubMediaStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.Media, error) {
	for i, m := range s.items {
		if m.ID != id {
			continue
		}
		if url, ok := set["url"].(string); ok {
			m.URL = url
		}
		if thumb, ok := set["thumbnail"].(string); ok {
			m.Thumbnail = thumb
		}
		if category, ok := set["category"].(string); ok {
			m.Category = category
		}
		if status, ok := set["status"].(string); ok {
			m.Status = status
		}
		s.items[i] = m
		return m, nil
	}
	return models.Media{}, store.ErrNotFound
}

func (s *stubMediaStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, m := range s.items {
		if m.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func newMediaApp(s *stubMediaStore) *fiber.App {
	app := fiber.New()
	ctl := NewMediaController(s, nil)
	app.Get("/api/media", ctl.List)
	app.Post("/api/admin/media", ctl.Create)
	app.Put("/api/admin/media/:id", ctl.Update)
	app.Delete("/api/admin/media/:id", ctl.Delete)
	return app
}

func TestCreateMediaDerivesYouTubeThumbnail(t *testing.T) {
	s := &stubMediaStore{}
	app := newMediaApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/media",
		`{"url":"https://youtu.be/dQw4w9WgXcQ","type":"video","source":"youtube"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if len(s.items) != 1 {
		t.Fatalf("expected 1 media item, got %d", len(s.items))
	}
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
	if s.items[0].Thumbnail != want {
		t.Errorf("thumbnail = %q, want %q", s.items[0].Thumbnail, want)
	}
}

func TestCreateMediaWithoutPipelineIsReady(t *testing.T) {
	s := &stubMediaStore{}
	app := newMediaApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/media",
		`{"url":"https://res.cloudinary.com/demo/video/upload/clip.mp4","type":"video","source":"local"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if s.items[0].Status != models.MediaStatusReady {
		t.Errorf("status = %q, want ready when no pipeline is connected", s.items[0].Status)
	}
}

func TestCreateMediaInvalidType(t *testing.T) {
	s := &stubMediaStore{}
	app := newMediaApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/media",
		`{"url":"https://res.cloudinary.com/demo/x.gif","type":"gif"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if len(s.items) != 0 {
		t.Errorf("rejected media must not be stored, have %d", len(s.items))
	}
}

func TestCreateMediaRejectsForeignImageHost(t *testing.T) {
	app := newMediaApp(&stubMediaStore{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/media",
		`{"url":"https://evil.example.com/x.jpg","type":"image"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateMediaRejectsForeignThumbnailHost(t *testing.T) {
	s := &stubMediaStore{items: []models.Media{{
		ID:     primitive.NewObjectID(),
		URL:    "https://res.cloudinary.com/demo/image/upload/x.jpg",
		Type:   models.MediaTypeImage,
		Source: models.MediaSourceLocal,
		Status: models.MediaStatusReady,
	}}}
	app := newMediaApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/admin/media/"+s.items[0].ID.Hex(),
		`{"thumbnail":"https://evil.example.com/t.jpg"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if s.items[0].Thumbnail != "" {
		t.Errorf("rejected update must not change the document, thumbnail = %q", s.items[0].Thumbnail)
	}
}

func TestListMediaTypeFilter(t *testing.T) {
	s := &stubMediaStore{items: []models.Media{
		{ID: primitive.NewObjectID(), URL: "a", Type: models.MediaTypeImage, Status: models.MediaStatusReady},
		{ID: primitive.NewObjectID(), URL: "b", Type: models.MediaTypeVideo, Status: models.MediaStatusReady},
	}}
	app := newMediaApp(s)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/media?type=image", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data := decodeBody(t, resp)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 image item, got %d", len(data))
	}
}
