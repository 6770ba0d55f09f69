package controllers

import (
	"net/http"
	"os"
	"strings"

	"dropradar-backend/database"

	"github.com/gofiber/fiber/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type FeedbackForm struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// POST /api/feedback
// Relays drop tips and corrections from signed-in collectors.
func FeedbackHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing user",
		})
	}

	var email, handle string
	if err := database.DB.QueryRow(`SELECT email, handle FROM users WHERE id = $1`, userID).Scan(&email, &handle); err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	form := new(FeedbackForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if len(strings.TrimSpace(form.Message)) < 15 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is too short",
		})
	}

	subject := "[Drop Radar] Feedback"
	if s := strings.TrimSpace(form.Subject); s != "" {
		subject = "[Drop Radar] " + s
	}

	sender := mail.NewEmail("Drop Radar Feedback", os.Getenv("EMAIL_FROM"))
	recipient := mail.NewEmail("Drop Radar Team", os.Getenv("FEEDBACK_INBOX"))

	plainText := "From: @" + handle + "\nEmail: " + email + "\n\n" + form.Message
	htmlText := "<strong>From:</strong> @" + handle + "<br><strong>Email:</strong> " + email + "<br><br>" + form.Message

	message := mail.NewSingleEmail(sender, subject, recipient, plainText, htmlText)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))

	_, err := client.Send(message)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	return c.SendStatus(http.StatusOK)
}
