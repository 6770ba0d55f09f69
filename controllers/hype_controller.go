package controllers

import (
	"time"

	"dropradar-backend/hype"

	"github.com/gofiber/fiber/v2"
)

// GET /api/hype
// Always responds 200; upstream failure degrades to the fallback list with
// source "fallback" instead of erroring.
func GetHypeList(c *fiber.Ctx) error {
	ensureDeps()

	cards, source := hypeRanker.Rank(hype.DefaultLimit)

	return c.JSON(fiber.Map{
		"success":   true,
		"data":      cards,
		"source":    source,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
