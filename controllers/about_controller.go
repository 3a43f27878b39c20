package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// AboutStore is the persistence surface for the singleton about document.
type AboutStore interface {
	Get(ctx context.Context) (models.About, error)
	Upsert(ctx context.Context, set bson.M) (models.About, error)
}

type AboutController struct {
	store AboutStore
}

func NewAboutController(s AboutStore) *AboutController {
	return &AboutController{store: s}
}

func (ctl *AboutController) Get(c *fiber.Ctx) error {
	about, err := ctl.store.Get(c.Context())
	if err != nil {
		return respondStoreError(c, err, "About")
	}
	return respondData(c, http.StatusOK, about)
}

// Upsert replaces the provided fields on the singleton document, creating it
// on first write. Array fields are replaced whenever the key is present in
// the request, so clients can clear them with an empty array.
func (ctl *AboutController) Upsert(c *fiber.Ctx) error {
	var payload models.About
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if payload.Name == "" {
		return respondError(c, http.StatusBadRequest, "Name is required")
	}

	set := bson.M{"name": payload.Name}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.Description != "" {
		set["description"] = sanitizer.Sanitize(payload.Description)
	}
	if payload.Image != "" {
		set["image"] = payload.Image
	}
	if payload.ResumeURL != "" {
		set["resume_url"] = payload.ResumeURL
	}
	if _, ok := raw["skills"]; ok {
		set["skills"] = payload.Skills
	}
	if _, ok := raw["experiences"]; ok {
		set["experiences"] = payload.Experiences
	}
	if _, ok := raw["team"]; ok {
		set["team"] = payload.Team
	}

	about, err := ctl.store.Upsert(c.Context(), set)
	if err != nil {
		return respondStoreError(c, err, "About")
	}

	utils.LogAudit(currentUser(c), "Updated about", about.ID.Hex())
	return respondData(c, http.StatusOK, about)
}
