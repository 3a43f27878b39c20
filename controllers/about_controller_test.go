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

type stubAboutStore struct {
	docs []models.About
}

func (s *stubAboutStore) Get(_ context.Context) (models.About, error) {
	if len(s.docs) == 0 {
		return models.About{}, store.ErrNotFound
	}
	return s.docs[0], nil
}

func (s *stubAboutStore) Upsert(_ context.Context, set bson.M) (models.About, error) {
	if len(s.docs) == 0 {
		s.docs = append(s.docs, models.About{ID: primitive.NewObjectID()})
	}
	doc := &s.docs[0]
	if name, ok := set["name"].(string); ok {
		doc.Name = name
	}
	if title, ok := set["title"].(string); ok {
		doc.Title = title
	}
	if skills, ok := set["skills"].([]string); ok {
		doc.Skills = skills
	}
	return *doc, nil
}

func newAboutApp(s *stubAboutStore) *fiber.App {
	app := fiber.New()
	ctl := NewAboutController(s)
	app.Get("/api/about", ctl.Get)
	app.Put("/api/admin/about", ctl.Upsert)
	return app
}

func TestGetAboutEmpty(t *testing.T) {
	app := newAboutApp(&stubAboutStore{})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/about", ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

// Upserting twice must result in a single document that reflects the second
// write, never a second document.
func TestAboutUpsertIsSingleton(t *testing.T) {
	s := &stubAboutStore{}
	app := newAboutApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/admin/about", `{"name":"Jane","title":"Engineer"}`))
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(s.docs) != 1 {
		t.Fatalf("expected 1 document after first upsert, got %d", len(s.docs))
	}
	firstID := s.docs[0].ID

	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/admin/about", `{"name":"Jane Doe"}`))
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(s.docs) != 1 {
		t.Fatalf("expected 1 document after second upsert, got %d", len(s.docs))
	}
	if s.docs[0].ID != firstID {
		t.Error("second upsert must update the same document")
	}
	if s.docs[0].Name != "Jane Doe" {
		t.Errorf("name = %q, want %q", s.docs[0].Name, "Jane Doe")
	}
	if s.docs[0].Title != "Engineer" {
		t.Errorf("partial upsert must keep untouched fields, title = %q", s.docs[0].Title)
	}
}

func TestAboutUpsertRequiresName(t *testing.T) {
	app := newAboutApp(&stubAboutStore{})

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/admin/about", `{"title":"Engineer"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
