package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
	"github.com/propsetu/realestate_guru/services"
	"github.com/propsetu/realestate_guru/utils"
)

type ModuleSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	HasVideo    bool   `json:"has_video"`
	OrderIndex  int    `json:"order_index"`
}

// ListModules returns the learner-facing catalog: active modules only,
// ordered by their order index.
func ListModules(c *fiber.Ctx) error {
	var modules []models.Module
	if err := database.DB.Where("is_active = ?", true).Order("order_index").Find(&modules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load modules"})
	}

	summaries := make([]ModuleSummary, len(modules))
	for i, m := range modules {
		summaries[i] = ModuleSummary{
			ID:          m.ID.String(),
			Title:       m.Title,
			Description: m.Description,
			Difficulty:  m.Difficulty,
			Category:    m.Category,
			HasVideo:    m.YouTubeURL != nil && *m.YouTubeURL != "",
			OrderIndex:  m.OrderIndex,
		}
	}
	return c.JSON(summaries)
}

func GetModule(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")

	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", moduleID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var videoID, embedURL, videoDuration string
	if module.YouTubeURL != nil {
		videoID = utils.ExtractYouTubeID(*module.YouTubeURL)
		if videoID != "" {
			embedURL = utils.EmbedURL(videoID)
		}
		if module.VideoDuration != "" {
			videoDuration = utils.FormatDuration(module.VideoDuration)
		}
	}

	var questionCount int64
	database.DB.Model(&models.Question{}).Where("module_id = ?", module.ID).Count(&questionCount)

	return c.JSON(fiber.Map{
		"module":          module,
		"video_id":        videoID,
		"video_embed_url": embedURL,
		"video_duration":  videoDuration,
		"question_count":  questionCount,
	})
}

// MarkModuleRead records a completed reading of the module. The points and
// badge fire on the first completion only; re-reading changes nothing.
func MarkModuleRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	moduleID := c.Params("moduleId")

	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", moduleID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}

	var progress models.UserProgress
	now := time.Now()
	err := database.DB.Where("user_id = ? AND module_id = ?", userID, module.ID).First(&progress).Error
	if err != nil {
		progress = models.UserProgress{
			UserID:    userID,
			ModuleID:  module.ID,
			StartedAt: &now,
		}
	}

	firstCompletion := !progress.Completed
	progress.ProgressPercentage = 100
	progress.Completed = true
	if progress.CompletedAt == nil {
		progress.CompletedAt = &now
	}

	if err := database.DB.Save(&progress).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	if firstCompletion {
		services.AwardModuleRead(userID)
	}
	go services.TouchActivity(userID)

	return c.JSON(fiber.Map{"message": "Module marked as read", "first_completion": firstCompletion})
}

// MarkVideoViewed awards the video-viewing points for a module with a video.
func MarkVideoViewed(c *fiber.Ctx) error {
	userID := currentUserID(c)
	moduleID := c.Params("moduleId")

	var module models.Module
	if err := database.DB.First(&module, "id = ? AND is_active = ?", moduleID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}
	if module.YouTubeURL == nil || *module.YouTubeURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Module has no video"})
	}

	services.AwardVideoViewed(userID)
	go services.TouchActivity(userID)

	return c.JSON(fiber.Map{"message": "Video view recorded"})
}
