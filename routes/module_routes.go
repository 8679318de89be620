package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func ModuleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	modules := api.Group("/modules", middleware.Protected())
	modules.Get("", handlers.ListModules)
	modules.Get("/:moduleId", handlers.GetModule)
	modules.Post("/:moduleId/read", handlers.MarkModuleRead)
	modules.Post("/:moduleId/video-viewed", handlers.MarkVideoViewed)
}
