package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func ChatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	chat := api.Group("/chat", middleware.Protected())
	chat.Post("/ask", handlers.AskAssistant)
	chat.Get("/history", handlers.GetChatHistory)
	chat.Post("/feedback", handlers.GetAssessmentFeedback)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeAssistantWs))
}
