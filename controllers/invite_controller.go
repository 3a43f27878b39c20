package controllers

import (
	"context"
	"log"
	"net/http"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InviteStore interface {
	List(ctx context.Context) ([]models.ReviewInvite, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.ReviewInvite, error)
	Insert(ctx context.Context, invite *models.ReviewInvite) error
	MarkCompleted(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// InviteController handles the review-invite flow: an admin mints an invite,
// shares its link, and exactly one review can come back through it.
type InviteController struct {
	invites InviteStore
	reviews ReviewStore
}

func NewInviteController(invites InviteStore, reviews ReviewStore) *InviteController {
	return &InviteController{invites: invites, reviews: reviews}
}

func (ctl *InviteController) List(c *fiber.Ctx) error {
	invites, err := ctl.invites.List(c.Context())
	if err != nil {
		return respondStoreError(c, err, "Invite")
	}
	return respondData(c, http.StatusOK, invites)
}

func (ctl *InviteController) Create(c *fiber.Ctx) error {
	var invite models.ReviewInvite
	if err := c.BodyParser(&invite); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if invite.ClientName == "" {
		return respondError(c, http.StatusBadRequest, "Client name is required")
	}

	if err := ctl.invites.Insert(c.Context(), &invite); err != nil {
		return respondStoreError(c, err, "Invite")
	}

	utils.LogAudit(currentUser(c), "Created review invite", invite.ID.Hex())
	return respondData(c, http.StatusCreated, invite)
}

// GetPublic returns the metadata a client needs to pre-fill the review form.
// Completed invites still resolve so the page can show its thank-you state.
func (ctl *InviteController) GetPublic(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid invite ID format")
	}

	invite, err := ctl.invites.GetByID(c.Context(), id)
	if err != nil {
		return respondStoreError(c, err, "Invite")
	}

	return respondData(c, http.StatusOK, fiber.Map{
		"id":          invite.ID,
		"client_name": invite.ClientName,
		"designation": invite.Designation,
		"status":      invite.Status,
	})
}

// SubmitReview accepts the one review an invite is good for. The invite is
// claimed before the review is written, so two racing submissions can never
// both land; the loser sees the same rejection as a revisit to a completed
// invite.
func (ctl *InviteController) SubmitReview(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid invite ID format")
	}

	// Resolve the invite before looking at the payload so a dead link is a
	// 404 regardless of what was submitted with it.
	invite, err := ctl.invites.GetByID(c.Context(), id)
	if err != nil {
		return respondStoreError(c, err, "Invite")
	}
	if invite.Status == models.InviteStatusCompleted {
		return respondError(c, http.StatusBadRequest, "Invite has already been completed")
	}

	var payload models.Review
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if payload.Content == "" {
		return respondError(c, http.StatusBadRequest, "Review text is required")
	}
	if !validRating(payload.Rating) {
		return respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	}
	if payload.Image != "" && !utils.AllowedHost(payload.Image, config.AllowedMediaHosts()) {
		return respondError(c, http.StatusBadRequest, "Image URL host is not allowed")
	}

	if err := ctl.invites.MarkCompleted(c.Context(), id); err != nil {
		// Lost the race to another submission.
		return respondError(c, http.StatusBadRequest, "Invite has already been completed")
	}

	review := models.Review{
		Name:        invite.ClientName,
		Image:       payload.Image,
		Designation: invite.Designation,
		Rating:      payload.Rating,
		Content:     sanitizer.Sanitize(payload.Content),
		IsActive:    false, // moderated before it appears publicly
		InviteID:    &invite.ID,
	}
	if err := ctl.reviews.Insert(c.Context(), &review); err != nil {
		// The invite is already burned; surface the failure so the client
		// can contact the admin rather than retry into a rejection.
		log.Printf("invite %s: review insert failed after claim: %v", id.Hex(), err)
		return respondError(c, http.StatusInternalServerError, "Something went wrong")
	}

	return respondData(c, http.StatusCreated, review)
}

func (ctl *InviteController) Delete(c *fiber.Ctx) error {
	id, ok := parseObjectID(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid invite ID format")
	}

	if err := ctl.invites.Delete(c.Context(), id); err != nil {
		return respondStoreError(c, err, "Invite")
	}

	utils.LogAudit(currentUser(c), "Deleted review invite", id.Hex())
	return c.JSON(fiber.Map{"success": true, "message": "Invite deleted successfully"})
}
