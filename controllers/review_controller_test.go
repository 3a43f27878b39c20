package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"portfolio-api/models"
	"portfolio-api/store"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubReviewStore struct {
	reviews []models.Review
}

func (s *stubReviewStore) List(_ context.Context, activeOnly bool) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubReviewStore) Insert(_ context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *stubReviewStore) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.Review, error) {
	for i, r := range s.reviews {
		if r.ID != id {
			continue
		}
		if rating, ok := set["rating"].(int); ok {
			r.Rating = rating
		}
		if active, ok := set["is_active"].(bool); ok {
			r.IsActive = active
		}
		s.reviews[i] = r
		return r, nil
	}
	return models.Review{}, store.ErrNotFound
}

func (s *stubReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, r := range s.reviews {
		if r.ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func newReviewApp(s *stubReviewStore) *fiber.App {
	app := fiber.New()
	ctl := NewReviewController(s)
	app.Get("/api/reviews", ctl.List)
	app.Post("/api/admin/reviews", ctl.Create)
	app.Put("/api/admin/reviews/:id", ctl.Update)
	app.Delete("/api/admin/reviews/:id", ctl.Delete)
	return app
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	s := &stubReviewStore{}
	app := newReviewApp(s)

	for _, rating := range []int{0, -1, 6, 100} {
		payload := fmt.Sprintf(`{"name":"Jane","rating":%d,"review":"great"}`, rating)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/reviews", payload))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("rating %d: status = %d, want 400", rating, resp.StatusCode)
		}
	}
	if len(s.reviews) != 0 {
		t.Errorf("rejected ratings must not create documents, have %d", len(s.reviews))
	}
}

func TestCreateReview(t *testing.T) {
	s := &stubReviewStore{}
	app := newReviewApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/reviews",
		`{"name":"Jane","rating":5,"review":"great work"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if len(s.reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(s.reviews))
	}
	if !s.reviews[0].IsActive {
		t.Error("admin-created reviews default to active")
	}
}

func TestCreateReviewRejectsForeignImageHost(t *testing.T) {
	s := &stubReviewStore{}
	app := newReviewApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/reviews",
		`{"name":"Jane","rating":5,"review":"great","image":"https://evil.example.com/x.jpg"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if len(s.reviews) != 0 {
		t.Errorf("rejected image host must not create documents, have %d", len(s.reviews))
	}

	// The allowlisted CDN host passes.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/admin/reviews",
		`{"name":"Jane","rating":5,"review":"great","image":"https://res.cloudinary.com/demo/jane.jpg"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}
}

func TestUpdateReviewRejectsForeignImageHost(t *testing.T) {
	s := &stubReviewStore{reviews: []models.Review{
		{ID: primitive.NewObjectID(), Name: "a", Rating: 3},
	}}
	app := newReviewApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/api/admin/reviews/"+s.reviews[0].ID.Hex(), `{"image":"https://evil.example.com/x.jpg"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteReviewRemovesExactlyOne(t *testing.T) {
	s := &stubReviewStore{reviews: []models.Review{
		{ID: primitive.NewObjectID(), Name: "a", Rating: 5},
		{ID: primitive.NewObjectID(), Name: "b", Rating: 4},
	}}
	app := newReviewApp(s)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/admin/reviews/"+s.reviews[1].ID.Hex(), ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(s.reviews) != 1 || s.reviews[0].Name != "a" {
		t.Errorf("expected only review b to be removed, have %+v", s.reviews)
	}

	// Listing no longer includes the removed review.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/reviews", ""))
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	data := decodeBody(t, resp)["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 listed review, got %d", len(data))
	}
}

func TestUpdateReviewRatingValidation(t *testing.T) {
	s := &stubReviewStore{reviews: []models.Review{
		{ID: primitive.NewObjectID(), Name: "a", Rating: 3},
	}}
	app := newReviewApp(s)

	resp, err := app.Test(jsonRequest(http.MethodPut,
		"/api/admin/reviews/"+s.reviews[0].ID.Hex(), `{"rating":9}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if s.reviews[0].Rating != 3 {
		t.Errorf("rejected update must not change the document, rating = %d", s.reviews[0].Rating)
	}
}
