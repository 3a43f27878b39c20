package controllers

import (
	"context"
	"net/http"

	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessStore interface {
	List(ctx context.Context) ([]models.Business, error)
	Insert(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Business, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BusinessController struct {
	store BusinessStore
}

func NewBusinessController(s BusinessStore) *BusinessController {
	return &BusinessController{store: s}
}

func (ctl *BusinessController) List(c *fiber.Ctx) error {
	businesses, err := ctl.store.List(c.Context())
	if err != nil {
		return respondStoreError(c, err, "Business")
	}
	return respondData(c, http.StatusOK, businesses)
}

func (ctl *BusinessController) Create(c *fiber.Ctx) error {
	var business models.Business
	if err := c.BodyParser(&business); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if business.Name == "" {
		return respondError(c, http.StatusBadRequest, "Name is required")
	}

	if err := ctl.store.Insert(c.Context(), &business); err != nil {
		return respondStoreError(c, err, "Business")
	}

	utils.LogAudit(currentUser(c), "Created business", business.ID.Hex())
	return respondData(c, http.StatusCreated, business)
}

func (ctl *BusinessController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid business ID format")
	}

	var payload models.Business
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Logo != "" {
		set["logo"] = payload.Logo
	}
	if payload.Website != "" {
		set["website"] = payload.Website
	}
	if payload.Role != "" {
		set["role"] = payload.Role
	}
	if payload.Duration != "" {
		set["duration"] = payload.Duration
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}

	business, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Business")
	}

	utils.LogAudit(currentUser(c), "Updated business", business.ID.Hex())
	return respondData(c, http.StatusOK, business)
}

func (ctl *BusinessController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid business ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Business")
	}

	utils.LogAudit(currentUser(c), "Deleted business", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Business deleted successfully"})
}
