package controllers

import (
	"log"
	"net/http"
	"net/mail"

	"portfolio-api/config"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/gomail.v2"
)

// MailSender is satisfied by *gomail.Dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ContactMessage is the contact-form payload relayed over SMTP.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MailController struct {
	sender MailSender
	from   string
	to     string
}

// NewMailSender builds the SMTP dialer from environment credentials, or nil
// when no host is configured.
func NewMailSender() MailSender {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return gomail.NewDialer(
		host,
		config.GetEnvInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USERNAME", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)
}

func NewMailController(sender MailSender) *MailController {
	return &MailController{
		sender: sender,
		from:   config.GetEnv("MAIL_FROM", config.GetEnv("SMTP_USERNAME", "")),
		to:     config.GetEnv("MAIL_TO", ""),
	}
}

// Send relays a contact-form submission to the configured recipient with
// Reply-To pointing back at the submitter. One SMTP call, no retries.
func (ctl *MailController) Send(c *fiber.Ctx) error {
	var msg ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return respondError(c, http.StatusBadRequest, "Name, email, subject and message are required")
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid email address")
	}

	if ctl.sender == nil || ctl.to == "" {
		return respondError(c, http.StatusServiceUnavailable, "Mail service is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", ctl.from)
	m.SetHeader("To", ctl.to)
	m.SetHeader("Reply-To", m.FormatAddress(msg.Email, msg.Name))
	m.SetHeader("Subject", "[Contact] "+msg.Subject)
	m.SetBody("text/plain", "From: "+msg.Name+" <"+msg.Email+">\n\n"+msg.Message)

	if err := ctl.sender.DialAndSend(m); err != nil {
		log.Printf("SMTP send failed: %v", err)
		return respondError(c, http.StatusBadGateway, "Failed to send message")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Message sent"})
}
