package controllers

import (
	"errors"
	"log"
	"net/http"

	"portfolio-api/store"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

// sanitizer strips dangerous markup from client-supplied HTML (blog content,
// review text) before it is stored.
var sanitizer = bluemonday.UGCPolicy()

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondStoreError maps store failures onto the error taxonomy: duplicate
// slug -> 400, missing document -> 404, anything else -> generic 500.
func respondStoreError(c *fiber.Ctx, err error, resource string) error {
	switch {
	case errors.Is(err, store.ErrDuplicateSlug):
		return respondError(c, http.StatusBadRequest, "Slug already exists")
	case errors.Is(err, store.ErrNotFound):
		return respondError(c, http.StatusNotFound, resource+" not found")
	default:
		log.Printf("%s: store error: %v", c.Path(), err)
		return respondError(c, http.StatusInternalServerError, "Something went wrong")
	}
}

func currentUser(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok && id != "" {
		return id
	}
	return "anonymous"
}
