package routes

import (
	"dropradar-backend/controllers"
	"dropradar-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/hype", controllers.GetHypeList)
	api.Get("/drops", controllers.GetDropSchedule)
	api.Post("/drops", controllers.CreateDrop)
	api.Get("/dashboard", middleware.OptionalAuth, controllers.GetDashboard)

	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Get("/verify-email", controllers.VerifyEmail)
	api.Post("/resend-verification", controllers.ResendVerification)
	api.Get("/me", middleware.RequireAuth, controllers.GetMe)

	api.Get("/preferences", middleware.RequireAuth, controllers.GetPreferences)
	api.Post("/preferences/keywords", middleware.RequireAuth, controllers.AddWatchKeyword)
	api.Delete("/preferences/keywords", middleware.RequireAuth, controllers.RemoveWatchKeyword)
	api.Post("/preferences/notify", middleware.OptionalAuth, controllers.ToggleNotify)

	api.Post("/feedback", middleware.RequireAuth, controllers.FeedbackHandler)

	admin := api.Group("/admin", middleware.RequireAuth)
	admin.Get("/drops/candidates", controllers.GetDropCandidates)
}
