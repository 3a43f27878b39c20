package routes

import (
	"portfolio-api/controllers"
	"portfolio-api/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the public read surface and the JWT-guarded admin
// surface. Fixed public routes are registered before param routes to avoid
// conflicts.
func SetupRoutes(app *fiber.App, h *controllers.Controllers) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", h.Auth.Login)

	// Public reads
	api.Get("/about", h.About.Get)
	api.Get("/blogs", h.Blogs.List)
	api.Get("/blogs/:slug", h.Blogs.GetBySlug)
	api.Get("/contact", h.Contact.Get)
	api.Get("/banners", h.Banners.List)
	api.Get("/businesses", h.Businesses.List)
	api.Get("/events", h.Events.List)
	api.Get("/events/:slug", h.Events.GetBySlug)
	api.Get("/faqs", h.FAQs.List)
	api.Get("/media", h.Media.List)
	api.Get("/reviews", h.Reviews.List)

	// Contact form relay
	api.Post("/contact/send", h.Mail.Send)

	// Review invite flow (public by design: the link is the credential)
	api.Get("/review-invites/:id", h.Invites.GetPublic)
	api.Post("/review-invites/:id/review", h.Invites.SubmitReview)

	// Admin surface
	admin := api.Group("/admin", middleware.AuthMiddleware)

	admin.Put("/about", h.About.Upsert)
	admin.Put("/contact", h.Contact.Upsert)

	admin.Post("/blogs", h.Blogs.Create)
	admin.Put("/blogs/:id", h.Blogs.Update)
	admin.Delete("/blogs/:id", h.Blogs.Delete)

	admin.Post("/banners", h.Banners.Create)
	admin.Put("/banners/:id", h.Banners.Update)
	admin.Delete("/banners/:id", h.Banners.Delete)

	admin.Post("/businesses", h.Businesses.Create)
	admin.Put("/businesses/:id", h.Businesses.Update)
	admin.Delete("/businesses/:id", h.Businesses.Delete)

	admin.Post("/events", h.Events.Create)
	admin.Put("/events/:id", h.Events.Update)
	admin.Delete("/events/:id", h.Events.Delete)

	admin.Post("/faqs", h.FAQs.Create)
	admin.Put("/faqs/:id", h.FAQs.Update)
	admin.Delete("/faqs/:id", h.FAQs.Delete)

	admin.Post("/media", h.Media.Create)
	admin.Put("/media/:id", h.Media.Update)
	admin.Delete("/media/:id", h.Media.Delete)

	admin.Post("/reviews", h.Reviews.Create)
	admin.Put("/reviews/:id", h.Reviews.Update)
	admin.Delete("/reviews/:id", h.Reviews.Delete)

	admin.Get("/review-invites", h.Invites.List)
	admin.Post("/review-invites", h.Invites.Create)
	admin.Delete("/review-invites/:id", h.Invites.Delete)

	admin.Post("/upload", h.Upload.Upload)
	admin.Get("/stats", h.Stats.Get)
}
