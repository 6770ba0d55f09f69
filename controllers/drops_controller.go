package controllers

import (
	"strconv"
	"strings"
	"time"

	"dropradar-backend/drops"

	"github.com/gofiber/fiber/v2"
)

// GET /api/drops?days=14&category=all&region=all
func GetDropSchedule(c *fiber.Ctx) error {
	ensureDeps()

	days := 14
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "days must be a positive integer",
			})
		}
		days = parsed
	}

	category := c.Query("category", "all")
	region := c.Query("region", "all")

	entries, err := dropCatalog.List(days, category, region)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       entries,
		"filters":    fiber.Map{"days": days, "category": category, "region": region},
		"totalCount": len(entries),
		"updatedAt":  time.Now().UTC().Format(time.RFC3339),
	})
}

// POST /api/drops
// Accepts a partial entry, returns it with a generated id and creation
// timestamp. Persisting it into the schedule is an admin concern (see
// cmd/import_drop_schedule).
func CreateDrop(c *fiber.Ctx) error {
	ensureDeps()

	var entry drops.Entry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid JSON",
		})
	}

	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "title is required",
		})
	}
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "date must be YYYY-MM-DD",
		})
	}

	created := dropCatalog.Create(entry)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Drop schedule added successfully",
		"data":    created,
	})
}
