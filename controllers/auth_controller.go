package controllers

import (
	"net/http"
	"os"

	"portfolio-api/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthController issues admin tokens. There is a single admin identity,
// configured through ADMIN_EMAIL and ADMIN_PASSWORD_HASH (a bcrypt hash).
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "Email and password are required")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		return respondError(c, http.StatusServiceUnavailable, "Admin login is not configured")
	}

	if req.Email != adminEmail ||
		bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(req.Password)) != nil {
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.IssueToken(req.Email)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}
