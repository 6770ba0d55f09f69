package controllers

import (
	"os"
	"sync"

	"dropradar-backend/dashboard"
	"dropradar-backend/database"
	"dropradar-backend/drops"
	"dropradar-backend/hype"
	"dropradar-backend/prefs"

	"github.com/gofiber/fiber/v2"
)

var (
	depsOnce    sync.Once
	hypeRanker  *hype.Ranker
	dropCatalog *drops.Catalog
	prefStore   prefs.Store
)

// ensureDeps builds the shared collaborators on first use, after main has
// loaded the environment and connected the database.
func ensureDeps() {
	depsOnce.Do(func() {
		hypeRanker = hype.NewRanker(os.Getenv("POKEMON_TCG_API_KEY"))
		dropCatalog = drops.NewCatalog()
		prefStore = prefs.NewPostgresStore(database.DB)
	})
}

// ctxIdentity resolves the request's JWT user into a dashboard identity.
type ctxIdentity struct {
	c *fiber.Ctx
}

func (p ctxIdentity) Current() (dashboard.Identity, bool) {
	userID, ok := p.c.Locals("user_id").(int)
	if !ok || userID <= 0 {
		return dashboard.Identity{}, false
	}

	var identity dashboard.Identity
	err := database.DB.QueryRow(`
		SELECT display_name, handle, COALESCE(avatar_url, '') FROM users WHERE id = $1
	`, userID).Scan(&identity.DisplayName, &identity.Handle, &identity.AvatarURL)
	if err != nil {
		return dashboard.Identity{}, false
	}
	return identity, true
}

func newSessionController(c *fiber.Ctx) *dashboard.Controller {
	ensureDeps()
	userID, _ := c.Locals("user_id").(int)
	return dashboard.New(hypeRanker, dropCatalog, prefStore, ctxIdentity{c: c}, userID)
}
