package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-api/models"
	"portfolio-api/store"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogStore is the persistence surface the blog handlers need.
type BlogStore interface {
	List(ctx context.Context, f store.BlogFilter) ([]models.Blog, int64, error)
	GetBySlug(ctx context.Context, slug string) (models.Blog, error)
	Insert(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogController struct {
	store BlogStore
}

func NewBlogController(s BlogStore) *BlogController {
	return &BlogController{store: s}
}

// List returns blogs newest-first. Supports ?category=, ?published=true and
// the usual ?page=/?limit= pair; without a limit the whole collection comes
// back, which is what the public site expects.
func (ctl *BlogController) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 0)
	filter := store.BlogFilter{
		Category:      c.Query("category"),
		PublishedOnly: c.Query("published") == "true",
		Page:          page,
		Limit:         limit,
	}

	blogs, total, err := ctl.store.List(c.Context(), filter)
	if err != nil {
		return respondStoreError(c, err, "Blog")
	}

	resp := fiber.Map{
		"success": true,
		"data":    blogs,
		"total":   total,
	}
	if limit > 0 {
		resp["page"] = page
		resp["page_size"] = limit
		resp["total_pages"] = (total + int64(limit) - 1) / int64(limit)
	}
	return c.JSON(resp)
}

func (ctl *BlogController) GetBySlug(c *fiber.Ctx) error {
	blog, err := ctl.store.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondStoreError(c, err, "Blog")
	}
	return respondData(c, http.StatusOK, blog)
}

func (ctl *BlogController) Create(c *fiber.Ctx) error {
	var blog models.Blog
	if err := c.BodyParser(&blog); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if blog.Title == "" {
		return respondError(c, http.StatusBadRequest, "Title is required")
	}
	if blog.Content == "" {
		return respondError(c, http.StatusBadRequest, "Content is required")
	}

	if blog.Slug == "" {
		blog.Slug = utils.GenerateSlug(blog.Title)
	} else {
		blog.Slug = utils.GenerateSlug(blog.Slug)
	}
	if blog.Slug == "" {
		return respondError(c, http.StatusBadRequest, "Slug is required")
	}
	blog.Content = sanitizer.Sanitize(blog.Content)

	if err := ctl.store.Insert(c.Context(), &blog); err != nil {
		return respondStoreError(c, err, "Blog")
	}

	utils.LogAudit(currentUser(c), "Created blog", blog.ID.Hex())
	return respondData(c, http.StatusCreated, blog)
}

// Update applies only the provided fields, the same partial-$set way every
// other resource updates. Booleans are taken from the raw body so that
// explicitly sending false works.
func (ctl *BlogController) Update(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid blog ID format")
	}

	var payload models.Blog
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
	if payload.Content != "" {
		set["content"] = sanitizer.Sanitize(payload.Content)
	}
	if payload.Excerpt != "" {
		set["excerpt"] = payload.Excerpt
	}
	if payload.CoverImage != "" {
		set["cover_image"] = payload.CoverImage
	}
	if payload.Category != "" {
		set["category"] = payload.Category
	}
	if _, ok := raw["tags"]; ok {
		set["tags"] = payload.Tags
	}
	if _, ok := raw["is_published"]; ok {
		set["is_published"] = payload.IsPublished
	}

	blog, err := ctl.store.Update(c.Context(), id, set)
	if err != nil {
		return respondStoreError(c, err, "Blog")
	}

	utils.LogAudit(currentUser(c), "Updated blog", blog.ID.Hex())
	return respondData(c, http.StatusOK, blog)
}

func (ctl *BlogController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid blog ID format")
	}

	if err := ctl.store.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Blog")
	}

	utils.LogAudit(currentUser(c), "Deleted blog", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Blog deleted successfully"})
}
