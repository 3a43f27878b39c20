package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQStore interface {
	List(ctx context.Context, category string, activeOnly bool) ([]models.FAQ, error)
	Insert(ctx context.Context, faq *models.FAQ) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.FAQ, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FAQController struct {
	store FAQStore
}

func NewFAQController(s FAQStore) *FAQController {
	return &FAQController{store: s}
}

func (ctl *FAQController) List(c *fiber.Ctx) error {
	faqs, err := ctl.store.List(c.Context(), c.Query("category"), c.Query("active") == "true")
	if err != nil {
		return respondStoreError(c, err, "FAQ")
	}
	return respondData(c, http.StatusOK, faqs)
}

func (ctl *FAQController) Create(c *fiber.Ctx) error {
	var faq models.FAQ
	if err := c.BodyParser(&faq); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if faq.Question == "" {
		return respondError(c, http.StatusBadRequest, "Question is required")
	}
	if faq.Answer == "" {
		return respondError(c, http.StatusBadRequest, "Answer is required")
	}
	if _, ok := raw["is_active"]; !ok {
		faq.IsActive = true
	}

	if err := ctl.store.Insert(c.Context(), &faq); err != nil {
		return respondStoreError(c, err, "FAQ")
	}

	utils.LogAudit(currentUser(c), "Created FAQ", faq.ID.Hex())
	return respondData(c, http.StatusCreated, faq)
}

func (ctl *FAQController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid FAQ ID format")
	}

	var payload models.FAQ
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if payload.Question != "" {
		set["question"] = payload.Question
	}
	if payload.Answer != "" {
		set["answer"] = payload.Answer
	}
	if payload.Category != "" {
		set["category"] = payload.Category
	}
	if _, ok := raw["is_active"]; ok {
		set["is_active"] = payload.IsActive
	}

	faq, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "FAQ")
	}

	utils.LogAudit(currentUser(c), "Updated FAQ", faq.ID.Hex())
	return respondData(c, http.StatusOK, faq)
}

func (ctl *FAQController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid FAQ ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "FAQ")
	}

	utils.LogAudit(currentUser(c), "Deleted FAQ", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "FAQ deleted successfully"})
}
