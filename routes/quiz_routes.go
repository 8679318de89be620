package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/handlers"
	"github.com/propsetu/realestate_guru/middleware"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quiz := api.Group("/modules/:moduleId/quiz", middleware.Protected())
	quiz.Get("", handlers.GetQuizInfo)
	quiz.Post("/start", handlers.StartQuiz)
	quiz.Post("/answer", handlers.SubmitAnswer)
	quiz.Post("/previous", handlers.PreviousQuestion)
	quiz.Get("/result", handlers.GetQuizResult)
	quiz.Post("/retake", handlers.RetakeQuiz)
}
