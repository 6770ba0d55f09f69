package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard
// One-shot session bootstrap: hype list and drop calendar are fetched
// concurrently, persisted preferences merged in. Works signed out too; the
// preference sections are simply empty then.
func GetDashboard(c *fiber.Ctx) error {
	ctrl := newSessionController(c)
	state := ctrl.Initialize(c.Context())

	return c.JSON(fiber.Map{
		"success":   true,
		"data":      state,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
