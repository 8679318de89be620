package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/llm"
	"github.com/propsetu/realestate_guru/models"
	"github.com/propsetu/realestate_guru/services"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// AskAssistant forwards one question to the assistant. The user turn is
// persisted before the outbound call, so a failed call still leaves the
// question in the transcript with the apology as the assistant turn.
func AskAssistant(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userTurn := models.ChatMessage{UserID: userID, Role: "user", Content: req.Message}
	if err := database.DB.Create(&userTurn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save message"})
	}

	reply := llm.DefaultClient.GetResponse(req.Message)

	assistantTurn := models.ChatMessage{UserID: userID, Role: "assistant", Content: reply}
	if err := database.DB.Create(&assistantTurn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save reply"})
	}

	services.AwardChatUsage(userID)
	go services.TouchActivity(userID)

	return c.JSON(fiber.Map{"reply": reply})
}

// GetChatHistory returns the user's transcript, oldest first. Display-only:
// the assistant never sees prior turns.
func GetChatHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var messages []models.ChatMessage
	if err := database.DB.Where("user_id = ?", userID).Order("created_at").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load chat history"})
	}

	return c.JSON(messages)
}

type FeedbackRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	UserAnswer string `json:"user_answer" validate:"required,oneof=A B C D"`
}

// GetAssessmentFeedback asks the assistant to explain a quiz answer in depth.
func GetAssessmentFeedback(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", req.QuestionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	feedback := llm.DefaultClient.AssessmentFeedback(
		question.QuestionText,
		req.UserAnswer+". "+question.Option(req.UserAnswer),
		question.CorrectAnswer+". "+question.Option(question.CorrectAnswer),
	)

	return c.JSON(fiber.Map{"feedback": feedback})
}
