package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/models"
	"portfolio-api/store"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubEventStore struct {
	events []models.Event
}

func (s *stubEventStore) List(_ context.Context, status string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *stubEventStore) GetBySlug(_ context.Context, slug string) (models.Event, error) {
	for _, e := range s.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return models.Event{}, store.ErrNotFound
}

func (s *stubEventStore) Insert(_ context.Context, event *models.Event) error {
	for _, e := range s.events {
		if e.Slug == event.Slug {
			return store.ErrDuplicateSlug
		}
	}
	event.ID = primitive.NewObjectID()
	s.events = append(s.events, *event)
	return nil
}

func (s *stubEventStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.Event, error) {
	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		if title, ok := set["title"].(string); ok {
			e.Title = title
		}
		if status, ok := set["status"].(string); ok {
			e.Status = status
		}
		s.events[i] = e
		return e, nil
	}
	return models.Event{}, store.ErrNotFound
}

func (s *stubEventStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func newEventApp(s *stubEventStore) *fiber.App {
	app := fiber.New()
	ctl := NewEventController(s)
	app.Get("/api/events", ctl.List)
	app.Get("/api/events/:slug", ctl.GetBySlug)
	app.Post("/api/admin/events", ctl.Create)
	app.Put("/api/admin/events/:id", ctl.Update)
	app.Delete("/api/admin/events/:id", ctl.Delete)
	return app
}

func TestCreateEventDefaultsToUpcoming(t *testing.T) {
	s := &stubEventStore{}
	app := newEventApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/events",
		`{"title":"Launch Party","start_date":"2026-09-01T18:00:00Z"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if len(s.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(s.events))
	}
	if s.events[0].Status != models.EventStatusUpcoming {
		t.Errorf("status = %q, want upcoming", s.events[0].Status)
	}
	if s.events[0].Slug != "launch-party" {
		t.Errorf("slug = %q, want launch-party", s.events[0].Slug)
	}
}

func TestCreateEventRejectsUnknownStatus(t *testing.T) {
	s := &stubEventStore{}
	app := newEventApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/events",
		`{"title":"x","start_date":"2026-09-01T18:00:00Z","status":"postponed"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if len(s.events) != 0 {
		t.Errorf("rejected event must not be stored, have %d", len(s.events))
	}
}

func TestCreateEventRequiresStartDate(t *testing.T) {
	app := newEventApp(&stubEventStore{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/events", `{"title":"x"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListEventsStatusFilter(t *testing.T) {
	s := &stubEventStore{events: []models.Event{
		{ID: primitive.NewObjectID(), Title: "a", Slug: "a", Status: models.EventStatusUpcoming, StartDate: time.Now()},
		{ID: primitive.NewObjectID(), Title: "b", Slug: "b", Status: models.EventStatusCompleted, StartDate: time.Now()},
	}}
	app := newEventApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/events?status=upcoming", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data := decodeBody(t, resp)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 upcoming event, got %d", len(data))
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/events?status=bogus", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown status filter: status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	app := newEventApp(&stubEventStore{})

	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/api/admin/events/"+primitive.NewObjectID().Hex(), `{"title":"new"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetEventBySlug(t *testing.T) {
	s := &stubEventStore{events: []models.Event{
		{ID: primitive.NewObjectID(), Title: "Launch", Slug: "launch", Status: models.EventStatusUpcoming, StartDate: time.Now()},
	}}
	app := newEventApp(s)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/events/launch", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/events/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
