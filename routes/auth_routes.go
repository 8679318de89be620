package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	me := api.Group("/me", middleware.Protected())
	me.Get("", handlers.GetProfile)
	me.Put("/password", handlers.ChangePassword)
}
