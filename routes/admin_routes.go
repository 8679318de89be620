package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)

	modules := admin.Group("/modules")
	modules.Post("", handlers.CreateModule)
	modules.Get("", handlers.AdminListModules)
	modules.Put("/:moduleId", handlers.UpdateModule)
	modules.Delete("/:moduleId", handlers.DeactivateModule)

	questions := admin.Group("/questions")
	questions.Post("", handlers.CreateQuestion)
	questions.Get("", handlers.ListQuestions)
	questions.Post("/generate", handlers.GenerateQuestions)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Post("/:userId/award", handlers.ManualAward)

	research := admin.Group("/research")
	research.Post("", handlers.TriggerResearch)
	research.Get("", handlers.ListResearchNotes)
}
