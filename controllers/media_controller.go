package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/store"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaStore interface {
	List(ctx context.Context, f store.MediaFilter) ([]models.Media, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Media, error)
	Insert(ctx context.Context, media *models.Media) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Media, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MediaController struct {
	store    MediaStore
	pipeline *MediaPipeline
}

func NewMediaController(s MediaStore, pipeline *MediaPipeline) *MediaController {
	return &MediaController{store: s, pipeline: pipeline}
}

func (ctl *MediaController) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 0)
	filter := store.MediaFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	items, total, err := ctl.store.List(c.Context(), filter)
	if err != nil {
		return respondStoreError(c, err, "Media")
	}

	resp := fiber.Map{
		"success": true,
		"data":    items,
		"total":   total,
	}
	if limit > 0 {
		resp["page"] = page
		resp["page_size"] = limit
		resp["total_pages"] = (total + int64(limit) - 1) / int64(limit)
	}
	return c.JSON(resp)
}

// Create stores a gallery item. YouTube items get their thumbnail derived
// from the video id when the client omits one. Locally hosted items enter the
// processing pipeline when NATS is up; otherwise they are stored as-is.
func (ctl *MediaController) Create(c *fiber.Ctx) error {
	var media models.Media
	if err := c.BodyParser(&media); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if media.URL == "" {
		return respondError(c, http.StatusBadRequest, "URL is required")
	}
	if !models.ValidMediaType(media.Type) {
		return respondError(c, http.StatusBadRequest, "Type must be image or video")
	}
	if media.Source == "" {
		media.Source = models.MediaSourceLocal
	}
	if !models.ValidMediaSource(media.Source) {
		return respondError(c, http.StatusBadRequest, "Source must be local or youtube")
	}

	hosts := config.AllowedMediaHosts()
	if media.Type == models.MediaTypeImage && !utils.AllowedHost(media.URL, hosts) {
		return respondError(c, http.StatusBadRequest, "Image URL host is not allowed")
	}
	if media.Thumbnail != "" && !utils.AllowedHost(media.Thumbnail, hosts) {
		return respondError(c, http.StatusBadRequest, "Thumbnail URL host is not allowed")
	}

	if media.Source == models.MediaSourceYouTube && media.Thumbnail == "" {
		media.Thumbnail = utils.YouTubeThumbnail(media.URL)
	}

	media.Status = models.MediaStatusReady
	if media.Source == models.MediaSourceLocal && ctl.pipeline.Enabled() {
		media.Status = models.MediaStatusPending
	}

	if err := ctl.store.Insert(c.Context(), &media); err != nil {
		return respondStoreError(c, err, "Media")
	}

	if media.Status == models.MediaStatusPending {
		ctl.pipeline.Process(media)
	}

	utils.LogAudit(currentUser(c), "Created media", media.ID.Hex())
	return respondData(c, http.StatusCreated, media)
}

func (ctl *MediaController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid media ID format")
	}

	var payload models.Media
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	existing, err := ctl.store.GetByID(c.Context(), id)
	if err != nil {
		return respondStoreError(c, err, "Media")
	}

	set := bson.M{}
	reprocess := false
	if payload.URL != "" && payload.URL != existing.URL {
		set["url"] = payload.URL
		// A replaced source file re-enters the pipeline.
		if existing.Source == models.MediaSourceLocal && ctl.pipeline.Enabled() {
			set["status"] = models.MediaStatusPending
			reprocess = true
		}
	}
	if payload.Thumbnail != "" {
		if !utils.AllowedHost(payload.Thumbnail, config.AllowedMediaHosts()) {
			return respondError(c, http.StatusBadRequest, "Thumbnail URL host is not allowed")
		}
		set["thumbnail"] = payload.Thumbnail
	}
	if payload.Category != "" {
		set["category"] = payload.Category
	}

	media, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Media")
	}

	if reprocess {
		ctl.pipeline.Process(media)
	}

	utils.LogAudit(currentUser(c), "Updated media", media.ID.Hex())
	return respondData(c, http.StatusOK, media)
}

func (ctl *MediaController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid media ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Media")
	}

	utils.LogAudit(currentUser(c), "Deleted media", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Media deleted successfully"})
}
