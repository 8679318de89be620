package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func ProgressRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	progress := api.Group("/progress", middleware.Protected())
	progress.Get("/me", handlers.GetMyProgress)
	progress.Get("/activity", handlers.GetRecentActivity)
}
