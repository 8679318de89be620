package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/llm"
	"github.com/propsetu/realestate_guru/models"
	"github.com/propsetu/realestate_guru/services"
	"github.com/propsetu/realestate_guru/websocket"
)

type DashboardAnalyticsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	ActiveUsers     int64 `json:"active_users"`
	TotalModules    int64 `json:"total_modules"`
	TotalQuestions  int64 `json:"total_questions"`
	QuizCompletions int64 `json:"quiz_completions"`
	ResearchNotes   int64 `json:"research_notes"`
	OnlineLearners  int   `json:"online_learners"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse

	database.DB.Model(&models.User{}).Count(&response.TotalUsers)
	database.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&response.ActiveUsers)
	database.DB.Model(&models.Module{}).Where("is_active = ?", true).Count(&response.TotalModules)
	database.DB.Model(&models.Question{}).Count(&response.TotalQuestions)
	database.DB.Model(&models.UserAchievement{}).
		Where("achievement_type = ? AND achievement_name = ?", "badge", services.BadgeQuizTaker).
		Count(&response.QuizCompletions)
	database.DB.Model(&models.ResearchNote{}).Count(&response.ResearchNotes)
	response.OnlineLearners = websocket.OnlineCount()

	return c.JSON(response)
}

type ModuleRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Difficulty    string  `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Category      string  `json:"category" validate:"required"`
	Content       string  `json:"content"`
	YouTubeURL    *string `json:"youtube_url"`
	VideoDuration string  `json:"video_duration"`
	OrderIndex    int     `json:"order_index"`
}

func CreateModule(c *fiber.Ctx) error {
	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module := models.Module{
		Title:         req.Title,
		Description:   req.Description,
		Difficulty:    req.Difficulty,
		Category:      req.Category,
		Content:       req.Content,
		YouTubeURL:    req.YouTubeURL,
		VideoDuration: req.VideoDuration,
		OrderIndex:    req.OrderIndex,
		IsActive:      true,
	}

	if err := database.DB.Create(&module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create module"})
	}

	return c.Status(fiber.StatusCreated).JSON(module)
}

// AdminListModules includes deactivated modules, unlike the learner catalog.
func AdminListModules(c *fiber.Ctx) error {
	var modules []models.Module
	database.DB.Order("order_index").Find(&modules)
	return c.JSON(modules)
}

func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")
	var module models.Module
	if err := database.DB.First(&module, "id = ?", moduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var req ModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	module.Title = req.Title
	module.Description = req.Description
	module.Difficulty = req.Difficulty
	module.Category = req.Category
	module.Content = req.Content
	module.YouTubeURL = req.YouTubeURL
	module.VideoDuration = req.VideoDuration
	module.OrderIndex = req.OrderIndex
	database.DB.Save(&module)

	return c.JSON(module)
}

// DeactivateModule soft-deletes: the module disappears from the learner
// catalog while its questions and progress records stay intact.
func DeactivateModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")
	var module models.Module
	if err := database.DB.First(&module, "id = ?", moduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	module.IsActive = false
	if err := database.DB.Save(&module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate module"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type QuestionRequest struct {
	ModuleID      string `json:"module_id" validate:"required"`
	QuestionText  string `json:"question_text" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D"`
	Explanation   string `json:"explanation"`
}

// CreateQuestion adds one question to a module. Questions have no update or
// delete operation; the module must exist and be active at creation time.
func CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", req.ModuleID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	question := models.Question{
		ModuleID:      module.ID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func ListQuestions(c *fiber.Ctx) error {
	query := database.DB.Order("created_at")
	if moduleID := c.Query("module_id"); moduleID != "" {
		query = query.Where("module_id = ?", moduleID)
	}

	var questions []models.Question
	query.Find(&questions)
	return c.JSON(questions)
}

type GenerateQuestionsRequest struct {
	ModuleID   string `json:"module_id" validate:"required"`
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Count      int    `json:"count" validate:"required,gt=0,lte=10"`
}

// GenerateQuestions asks the assistant for questions on a topic and persists
// the ones that satisfy the option invariant (correct label A-D with
// non-empty text).
func GenerateQuestions(c *fiber.Ctx) error {
	var req GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", req.ModuleID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	generated, err := llm.DefaultClient.GenerateQuizQuestions(req.Topic, req.Difficulty, req.Count)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate questions"})
	}

	var created []models.Question
	for _, g := range generated {
		question, ok := questionFromGenerated(module.ID, g)
		if !ok {
			continue
		}
		if err := database.DB.Create(&question).Error; err != nil {
			continue
		}
		created = append(created, question)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"generated": len(generated),
		"created":   len(created),
		"questions": created,
	})
}

// questionFromGenerated maps an assistant-generated item onto the Question
// row, dropping anything that violates the correct-answer invariant.
func questionFromGenerated(moduleID uuid.UUID, g llm.GeneratedQuestion) (models.Question, bool) {
	if len(g.Options) != 4 {
		return models.Question{}, false
	}

	labels := []string{"A", "B", "C", "D"}
	options := make([]string, 4)
	for i, raw := range g.Options {
		// Options arrive as "A. Option text"; strip the label prefix.
		options[i] = strings.TrimSpace(strings.TrimPrefix(raw, labels[i]+"."))
	}

	correct := strings.ToUpper(strings.TrimSpace(g.CorrectAnswer))
	correctIndex := -1
	for i, label := range labels {
		if correct == label {
			correctIndex = i
		}
	}
	if correctIndex < 0 || options[correctIndex] == "" || g.Question == "" {
		return models.Question{}, false
	}

	return models.Question{
		ModuleID:      moduleID,
		QuestionText:  g.Question,
		OptionA:       options[0],
		OptionB:       options[1],
		OptionC:       options[2],
		OptionD:       options[3],
		CorrectAnswer: correct,
		Explanation:   g.Explanation,
	}, true
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)
	return c.JSON(users)
}

// ToggleUserStatus activates or deactivates an account. Users are never
// hard-deleted.
func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user status"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "is_active": user.IsActive})
}

type ManualAwardRequest struct {
	Points int    `json:"points" validate:"gte=0"`
	Badge  string `json:"badge"`
	Reason string `json:"reason"`
}

func ManualAward(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req ManualAwardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Points == 0 && req.Badge == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nothing to award"})
	}

	if err := services.AwardManual(userID, req.Points, req.Badge, req.Reason); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply award"})
	}

	return c.JSON(fiber.Map{"message": "Award applied"})
}

type ResearchRequest struct {
	Topics []string `json:"topics" validate:"required,min=1"`
}

// TriggerResearch researches the requested topics through the assistant and
// stores the notes.
func TriggerResearch(c *fiber.Ctx) error {
	var req ResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var notes []models.ResearchNote
	for _, topic := range req.Topics {
		note, err := services.ResearchTopic(topic)
		if err != nil {
			continue
		}
		notes = append(notes, *note)
	}

	return c.Status(fiber.StatusCreated).JSON(notes)
}

func ListResearchNotes(c *fiber.Ctx) error {
	var notes []models.ResearchNote
	database.DB.Order("created_at desc").Find(&notes)
	return c.JSON(notes)
}
