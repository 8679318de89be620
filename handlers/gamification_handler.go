package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
)

type LeaderboardUser struct {
	Username   string `json:"username"`
	Points     int    `json:"points"`
	StreakDays int    `json:"streak_days"`
}

func GetLeaderboard(c *fiber.Ctx) error {
	var leaderboard []LeaderboardUser

	err := database.DB.Model(&models.User{}).
		Select("username", "points", "streak_days").
		Where("role <> ? AND is_active = ?", "admin", true).
		Order("points desc").
		Limit(10).
		Find(&leaderboard).Error

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve leaderboard"})
	}

	return c.JSON(leaderboard)
}

func GetMyBadges(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"badges": user.BadgeList(), "points": user.Points})
}

func ListMyCertificates(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var certificates []models.Certificate
	database.DB.Where("user_id = ?", userID).Find(&certificates)

	return c.JSON(certificates)
}
