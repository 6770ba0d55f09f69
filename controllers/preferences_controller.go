package controllers

import (
	"strings"

	"dropradar-backend/prefs"

	"github.com/gofiber/fiber/v2"
)

// GET /api/preferences
func GetPreferences(c *fiber.Ctx) error {
	ensureDeps()

	userID, ok := c.Locals("user_id").(int)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing user"})
	}

	keywords, err := prefStore.Get(c.Context(), userID, prefs.KeyKeywords)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load preferences"})
	}
	notified, err := prefStore.Get(c.Context(), userID, prefs.KeyNotified)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load preferences"})
	}

	if keywords == nil {
		keywords = []string{}
	}
	if notified == nil {
		notified = []string{}
	}

	return c.JSON(fiber.Map{"keywords": keywords, "notified": notified})
}

// POST /api/preferences/keywords {"keyword": "Charizard"}
func AddWatchKeyword(c *fiber.Ctx) error {
	var input struct {
		Keyword string `json:"keyword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if strings.TrimSpace(input.Keyword) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keyword is required"})
	}

	ctrl := newSessionController(c)
	ctrl.AddKeyword(c.Context(), input.Keyword)

	return c.JSON(fiber.Map{"keywords": ctrl.State().Keywords})
}

// DELETE /api/preferences/keywords?keyword=Charizard
func RemoveWatchKeyword(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keyword query param is required"})
	}

	ctrl := newSessionController(c)
	ctrl.RemoveKeyword(c.Context(), keyword)

	return c.JSON(fiber.Map{"keywords": ctrl.State().Keywords})
}

// POST /api/preferences/notify {"dropId": "sv-151-restock"}
// Signed-out callers get 401 with authRequired so the client can surface the
// sign-in prompt and retry the toggle afterwards.
func ToggleNotify(c *fiber.Ctx) error {
	var input struct {
		DropID string `json:"dropId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if input.DropID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dropId is required"})
	}

	ctrl := newSessionController(c)
	if !ctrl.ToggleNotify(c.Context(), input.DropID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":        "Sign in to turn on notifications",
			"authRequired": true,
		})
	}

	return c.JSON(fiber.Map{
		"notified": ctrl.IsNotified(input.DropID),
		"dropId":   input.DropID,
	})
}
