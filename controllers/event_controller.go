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

type EventStore interface {
	List(ctx context.Context, status string) ([]models.Event, error)
	GetBySlug(ctx context.Context, slug string) (models.Event, error)
	Insert(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type EventController struct {
	store EventStore
}

func NewEventController(s EventStore) *EventController {
	return &EventController{store: s}
}

func (ctl *EventController) List(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.ValidEventStatus(status) {
		return respondError(c, http.StatusBadRequest, "Invalid event status")
	}

	events, err := ctl.store.List(c.Context(), status)
	if err != nil {
		return respondStoreError(c, err, "Event")
	}
	return respondData(c, http.StatusOK, events)
}

func (ctl *EventController) GetBySlug(c *fiber.Ctx) error {
	event, err := ctl.store.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondStoreError(c, err, "Event")
	}
	return respondData(c, http.StatusOK, event)
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if event.Title == "" {
		return respondError(c, http.StatusBadRequest, "Title is required")
	}
	if event.StartDate.IsZero() {
		return respondError(c, http.StatusBadRequest, "Start date is required")
	}
	if event.Status == "" {
		event.Status = models.EventStatusUpcoming
	}
	if !models.ValidEventStatus(event.Status) {
		return respondError(c, http.StatusBadRequest, "Invalid event status")
	}

	if event.Slug == "" {
		event.Slug = utils.GenerateSlug(event.Title)
	} else {
		event.Slug = utils.GenerateSlug(event.Slug)
	}
	if event.Slug == "" {
		return respondError(c, http.StatusBadRequest, "Slug is required")
	}

	if err := ctl.store.Insert(c.Context(), &event); err != nil {
		return respondStoreError(c, err, "Event")
	}

	utils.LogAudit(currentUser(c), "Created event", event.ID.Hex())
	return respondData(c, http.StatusCreated, event)
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid event ID format")
	}

	var payload models.Event
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
	if payload.Slug != "" {
		slug := utils.GenerateSlug(payload.Slug)
		if slug == "" {
			return respondError(c, http.StatusBadRequest, "Slug is required")
		}
		set["slug"] = slug
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}
	if !payload.StartDate.IsZero() {
		set["start_date"] = payload.StartDate
	}
	if !payload.EndDate.IsZero() {
		set["end_date"] = payload.EndDate
	}
	if _, ok := raw["location"]; ok {
		set["location"] = payload.Location
	}
	if _, ok := raw["price"]; ok {
		set["price"] = payload.Price
	}
	if payload.CoverImage != "" {
		set["cover_image"] = payload.CoverImage
	}
	if payload.Status != "" {
		if !models.ValidEventStatus(payload.Status) {
			return respondError(c, http.StatusBadRequest, "Invalid event status")
		}
		set["status"] = payload.Status
	}

	event, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Event")
	}

	utils.LogAudit(currentUser(c), "Updated event", event.ID.Hex())
	return respondData(c, http.StatusOK, event)
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid event ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Event")
	}

	utils.LogAudit(currentUser(c), "Deleted event", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Event deleted successfully"})
}
