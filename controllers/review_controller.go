package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReviewController struct {
	store ReviewStore
}

func NewReviewController(s ReviewStore) *ReviewController {
	return &ReviewController{store: s}
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

func (ctl *ReviewController) List(c *fiber.Ctx) error {
	reviews, err := ctl.store.List(c.Context(), c.Query("active") == "true")
	if err != nil {
		return respondStoreError(c, err, "Review")
	}
	return respondData(c, http.StatusOK, reviews)
}

// Create is the admin path for adding a testimonial directly, without an
// invite. Ratings outside 1..5 are rejected, never clamped.
func (ctl *ReviewController) Create(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if review.Name == "" {
		return respondError(c, http.StatusBadRequest, "Name is required")
	}
	if review.Content == "" {
		return respondError(c, http.StatusBadRequest, "Review text is required")
	}
	if !validRating(review.Rating) {
		return respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	}
	if review.Image != "" && !utils.AllowedHost(review.Image, config.AllowedMediaHosts()) {
		return respondError(c, http.StatusBadRequest, "Image URL host is not allowed")
	}

	review.Content = sanitizer.Sanitize(review.Content)
	review.InviteID = nil
	if _, ok := raw["is_active"]; !ok {
		review.IsActive = true
	}

	if err := ctl.store.Insert(c.Context(), &review); err != nil {
		return respondStoreError(c, err, "Review")
	}

	utils.LogAudit(currentUser(c), "Created review", review.ID.Hex())
	return respondData(c, http.StatusCreated, review)
}

func (ctl *ReviewController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid review ID format")
	}

	var payload models.Review
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Image != "" {
		if !utils.AllowedHost(payload.Image, config.AllowedMediaHosts()) {
			return respondError(c, http.StatusBadRequest, "Image URL host is not allowed")
		}
		set["image"] = payload.Image
	}
	if payload.Designation != "" {
		set["designation"] = payload.Designation
	}
	if _, ok := raw["rating"]; ok {
		if !validRating(payload.Rating) {
			return respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		}
		set["rating"] = payload.Rating
	}
	if payload.Content != "" {
		set["review"] = sanitizer.Sanitize(payload.Content)
	}
	if _, ok := raw["is_active"]; ok {
		set["is_active"] = payload.IsActive
	}

	review, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Review")
	}

	utils.LogAudit(currentUser(c), "Updated review", review.ID.Hex())
	return respondData(c, http.StatusOK, review)
}

func (ctl *ReviewController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid review ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Review")
	}

	utils.LogAudit(currentUser(c), "Deleted review", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Review deleted successfully"})
}
