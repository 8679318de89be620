package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
)

// GetMyProgress lists the user's per-module progress records.
func GetMyProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var progress []models.UserProgress
	if err := database.DB.Preload("Module").Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load progress"})
	}

	return c.JSON(progress)
}

// GetRecentActivity returns the newest entries of the user's achievement log.
func GetRecentActivity(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var entries []models.UserAchievement
	if err := database.DB.Where("user_id = ?", userID).
		Order("earned_at desc").
		Limit(20).
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load activity"})
	}

	return c.JSON(entries)
}
