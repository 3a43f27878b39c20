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

type BannerStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Banner, error)
	Insert(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Banner, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BannerController struct {
	store BannerStore
}

func NewBannerController(s BannerStore) *BannerController {
	return &BannerController{store: s}
}

func (ctl *BannerController) List(c *fiber.Ctx) error {
	banners, err := ctl.store.List(c.Context(), c.Query("active") == "true")
	if err != nil {
		return respondStoreError(c, err, "Banner")
	}
	return respondData(c, http.StatusOK, banners)
}

func (ctl *BannerController) Create(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if banner.Title == "" {
		return respondError(c, http.StatusBadRequest, "Title is required")
	}
	if banner.DesktopImage == "" {
		return respondError(c, http.StatusBadRequest, "Desktop image is required")
	}

	// New banners default to active unless the client says otherwise.
	if _, ok := raw["is_active"]; !ok {
		banner.IsActive = true
	}

	if err := ctl.store.Insert(c.Context(), &banner); err != nil {
		return respondStoreError(c, err, "Banner")
	}

	utils.LogAudit(currentUser(c), "Created banner", banner.ID.Hex())
	return respondData(c, http.StatusCreated, banner)
}

func (ctl *BannerController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid banner ID format")
	}

	var payload models.Banner
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	set := bson.M{}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.DesktopImage != "" {
		set["desktop_image"] = payload.DesktopImage
	}
	if payload.MobileImage != "" {
		set["mobile_image"] = payload.MobileImage
	}
	if payload.Link != "" {
		set["link"] = payload.Link
	}
	if _, ok := raw["is_active"]; ok {
		set["is_active"] = payload.IsActive
	}
	if _, ok := raw["order"]; ok {
		set["order"] = payload.Order
	}

	banner, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Banner")
	}

	utils.LogAudit(currentUser(c), "Updated banner", banner.ID.Hex())
	return respondData(c, http.StatusOK, banner)
}

func (ctl *BannerController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid banner ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Banner")
	}

	utils.LogAudit(currentUser(c), "Deleted banner", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Banner deleted successfully"})
}
