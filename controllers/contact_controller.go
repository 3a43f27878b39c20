package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"

	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// ContactStore is the persistence surface for the singleton contact document.
type ContactStore interface {
	Get(ctx context.Context) (models.Contact, error)
	Upsert(ctx context.Context, set bson.M) (models.Contact, error)
}

type ContactController struct {
	store ContactStore
}

func NewContactController(s ContactStore) *ContactController {
	return &ContactController{store: s}
}

func (ctl *ContactController) Get(c *fiber.Ctx) error {
	contact, err := ctl.store.Get(c.Context())
	if err != nil {
		return respondStoreError(c, err, "Contact")
	}
	return respondData(c, http.StatusOK, contact)
}

func (ctl *ContactController) Upsert(c *fiber.Ctx) error {
	var payload models.Contact
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if payload.Email == "" {
		return respondError(c, http.StatusBadRequest, "Email is required")
	}
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid email address")
	}

	set := bson.M{"email": payload.Email}
	if payload.Phone != "" {
		set["phone"] = payload.Phone
	}
	if payload.Address != "" {
		set["address"] = payload.Address
	}
	if _, ok := raw["social"]; ok {
		set["social"] = payload.Social
	}

	contact, err := ctl.store.Upsert(c.Context(), set)
	if err != nil {
		return respondStoreError(c, err, "Contact")
	}

	utils.LogAudit(currentUser(c), "Updated contact details", contact.ID.Hex())
	return respondData(c, http.StatusOK, contact)
}
