package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
	"github.com/propsetu/realestate_guru/quiz"
	"github.com/propsetu/realestate_guru/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// quizQuestionQuery orders by creation time with the id as tiebreaker.
// Answers are recorded by question index across separate requests, so the
// order must come back identical on every load; batch-inserted rows can
// share a created_at down to the column's precision.
func quizQuestionQuery(db *gorm.DB, moduleID uuid.UUID) *gorm.DB {
	return db.Where("module_id = ?", moduleID).Order("created_at, id")
}

func loadQuizQuestions(moduleID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := quizQuestionQuery(database.DB, moduleID).Find(&questions).Error
	return questions, err
}

func encodeAnswers(answers map[int]string) datatypes.JSON {
	keyed := make(map[string]string, len(answers))
	for i, label := range answers {
		keyed[strconv.Itoa(i)] = label
	}
	raw, _ := json.Marshal(keyed)
	return datatypes.JSON(raw)
}

func decodeAnswers(raw datatypes.JSON) map[int]string {
	answers := make(map[int]string)
	if len(raw) == 0 {
		return answers
	}
	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return answers
	}
	for k, label := range keyed {
		if i, err := strconv.Atoi(k); err == nil {
			answers[i] = label
		}
	}
	return answers
}

func sessionFromRecord(record *models.QuizSession, total int) *quiz.Session {
	return &quiz.Session{
		Total:   total,
		State:   quiz.State(record.State),
		Index:   record.CurrentIndex,
		Answers: decodeAnswers(record.Answers),
	}
}

func storeSession(record *models.QuizSession, s *quiz.Session) error {
	record.State = string(s.State)
	record.CurrentIndex = s.Index
	record.Answers = encodeAnswers(s.Answers)
	return database.DB.Save(record).Error
}

func activeModule(c *fiber.Ctx) (*models.Module, error) {
	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", c.Params("moduleId"), true).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

type questionView struct {
	Index        int               `json:"index"`
	QuestionText string            `json:"question_text"`
	Options      map[string]string `json:"options"`
}

func viewOf(q models.Question, index int) questionView {
	return questionView{
		Index:        index,
		QuestionText: q.QuestionText,
		Options: map[string]string{
			"A": q.OptionA,
			"B": q.OptionB,
			"C": q.OptionC,
			"D": q.OptionD,
		},
	}
}

// GetQuizInfo reports whether the module offers a quiz and where the
// learner's session currently stands.
func GetQuizInfo(c *fiber.Ctx) error {
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}
	if len(questions) == 0 {
		return c.JSON(fiber.Map{"available": false, "message": "No questions available for this module"})
	}

	state := string(quiz.StateNotStarted)
	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", currentUserID(c), module.ID).First(&record).Error; err == nil {
		state = record.State
	}

	return c.JSON(fiber.Map{
		"available":      true,
		"module_title":   module.Title,
		"question_count": len(questions),
		"state":          state,
	})
}

// StartQuiz enters the first question and discards any answers recorded in a
// previous run of this session.
func StartQuiz(c *fiber.Ctx) error {
	userID := currentUserID(c)
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	session, err := quiz.NewSession(len(questions))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions available for this module"})
	}
	session.Start()

	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&record).Error; err != nil {
		record = models.QuizSession{UserID: userID, ModuleID: module.ID}
	}
	if err := storeSession(&record, session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"question_count": len(questions),
		"question":       viewOf(questions[0], 0),
	})
}

type AnswerRequest struct {
	SelectedAnswer string `json:"selected_answer" validate:"required,oneof=A B C D"`
}

// SubmitAnswer records the answer for the current question and advances.
// When the last question is answered the session transitions to finished,
// which is the single point where the progress upsert and the gamification
// awards fire. Re-reading the finished result never re-triggers them.
func SubmitAnswer(c *fiber.Ctx) error {
	userID := currentUserID(c)
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil || len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions available for this module"})
	}

	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been started"})
	}

	session := sessionFromRecord(&record, len(questions))
	finished, err := session.Next(req.SelectedAnswer)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz is not in progress"})
	}

	if err := storeSession(&record, session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save answer"})
	}

	if !finished {
		return c.JSON(fiber.Map{
			"finished": false,
			"question": viewOf(questions[session.Index], session.Index),
		})
	}

	correct := make([]string, len(questions))
	for i, q := range questions {
		correct[i] = q.CorrectAnswer
	}
	score, percentage := session.Score(correct)

	if err := upsertQuizProgress(userID, module.ID, percentage); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save results"})
	}

	services.AwardQuizCompletion(userID, percentage)
	if percentage == 100 {
		go services.CheckAndGenerateCertificate(userID, *module)
	}
	go services.TouchActivity(userID)

	return c.JSON(fiber.Map{
		"finished":   true,
		"score":      score,
		"total":      len(questions),
		"percentage": percentage,
		"review":     reviewOf(questions, session),
	})
}

// PreviousQuestion steps back without discarding the recorded answer.
func PreviousQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil || len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions available for this module"})
	}

	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been started"})
	}

	session := sessionFromRecord(&record, len(questions))
	if err := session.Previous(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := storeSession(&record, session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save state"})
	}

	recorded := session.Answers[session.Index]
	return c.JSON(fiber.Map{
		"question":        viewOf(questions[session.Index], session.Index),
		"recorded_answer": recorded,
	})
}

// GetQuizResult re-renders a finished quiz. It is read-only: no awards, no
// progress writes.
func GetQuizResult(c *fiber.Ctx) error {
	userID := currentUserID(c)
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil || len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions available for this module"})
	}

	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been started"})
	}

	session := sessionFromRecord(&record, len(questions))
	if session.State != quiz.StateFinished {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been completed"})
	}

	correct := make([]string, len(questions))
	for i, q := range questions {
		correct[i] = q.CorrectAnswer
	}
	score, percentage := session.Score(correct)

	return c.JSON(fiber.Map{
		"score":      score,
		"total":      len(questions),
		"percentage": percentage,
		"review":     reviewOf(questions, session),
	})
}

// RetakeQuiz returns a finished session to the start for a fresh attempt.
func RetakeQuiz(c *fiber.Ctx) error {
	userID := currentUserID(c)
	module, err := activeModule(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	questions, err := loadQuizQuestions(module.ID)
	if err != nil || len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions available for this module"})
	}

	var record models.QuizSession
	if err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&record).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been started"})
	}

	session := sessionFromRecord(&record, len(questions))
	if err := session.Retake(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has not been completed"})
	}

	if err := storeSession(&record, session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset quiz"})
	}

	return c.JSON(fiber.Map{"message": "Quiz reset", "state": string(session.State)})
}

type answerReview struct {
	QuestionText   string `json:"question_text"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
}

func reviewOf(questions []models.Question, session *quiz.Session) []answerReview {
	review := make([]answerReview, len(questions))
	for i, q := range questions {
		selected := session.Answers[i]
		review[i] = answerReview{
			QuestionText:   q.QuestionText,
			SelectedAnswer: selected,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      selected == q.CorrectAnswer,
			Explanation:    q.Explanation,
		}
	}
	return review
}

// upsertQuizProgress applies the replace-on-conflict semantics: the new
// percentage overwrites the stored score (last attempt wins, deliberately not
// a historical maximum) and the attempt counter increments by one.
func upsertQuizProgress(userID, moduleID uuid.UUID, percentage float64) error {
	now := time.Now()

	var progress models.UserProgress
	err := database.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&progress).Error
	if err != nil {
		progress = models.UserProgress{
			UserID:    userID,
			ModuleID:  moduleID,
			StartedAt: &now,
		}
	}

	progress.QuizScore = percentage
	progress.QuizAttempts++
	progress.CompletedAt = &now

	return database.DB.Save(&progress).Error
}
