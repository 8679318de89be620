package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func GamificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	gamification := api.Group("/gamification")
	gamification.Get("/leaderboard", handlers.GetLeaderboard)

	userGamification := api.Group("/gamification", middleware.Protected())
	userGamification.Get("/badges/me", handlers.GetMyBadges)
	userGamification.Get("/certificates/me", handlers.ListMyCertificates)
}
