package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
	"gorm.io/gorm"
)

const (
	PointsRegistration  = 100
	PointsModuleRead    = 20
	PointsVideoViewed   = 10
	PointsQuizExcellent = 100
	PointsQuizGood      = 75
	PointsQuizPass      = 50
	PointsChatUsage     = 5

	BadgeWelcomeLearner = "Welcome Learner"
	BadgeContentReader  = "Content Reader"
	BadgePerfectScore   = "Perfect Score"
	BadgeQuizTaker      = "Quiz Taker"
)

// QuizCompletionPoints maps a quiz percentage onto its point tier.
func QuizCompletionPoints(percentage float64) int {
	switch {
	case percentage >= 90:
		return PointsQuizExcellent
	case percentage >= 80:
		return PointsQuizGood
	case percentage >= 70:
		return PointsQuizPass
	}
	return 0
}

// QuizCompletionBadges lists the badges earned by a quiz completion.
// "Quiz Taker" is awarded on every completion regardless of score;
// "Perfect Score" only at exactly 100%.
func QuizCompletionBadges(percentage float64) []string {
	badges := []string{BadgeQuizTaker}
	if percentage == 100 {
		badges = append(badges, BadgePerfectScore)
	}
	return badges
}

// grant applies one award event to a user inside tx: the point delta always
// mutates the running total and appends a ledger entry; each badge always
// appends a ledger entry but joins the stored set only if not already held.
func grant(tx *gorm.DB, userID uuid.UUID, points int, label string, badges ...string) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	now := time.Now()

	if points > 0 {
		user.Points += points
		entry := models.UserAchievement{
			UserID:          user.ID,
			AchievementType: "points",
			AchievementName: label,
			PointsEarned:    points,
			EarnedAt:        now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}

	for _, badge := range badges {
		entry := models.UserAchievement{
			UserID:          user.ID,
			AchievementType: "badge",
			AchievementName: badge,
			EarnedAt:        now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		user.AddBadge(badge)
	}

	return tx.Save(&user).Error
}

// AwardRegistrationTx grants the registration bonus inside the caller's
// transaction so a failed registration leaves no ledger entries behind.
func AwardRegistrationTx(tx *gorm.DB, userID uuid.UUID) error {
	return grant(tx, userID, PointsRegistration, "Registration", BadgeWelcomeLearner)
}

func AwardModuleRead(userID uuid.UUID) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return grant(tx, userID, PointsModuleRead, "Module Read", BadgeContentReader)
	})
	if err != nil {
		log.Printf("🔥 Failed to award module-read points to user %s: %v", userID, err)
	}
}

func AwardVideoViewed(userID uuid.UUID) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return grant(tx, userID, PointsVideoViewed, "Video Viewed")
	})
	if err != nil {
		log.Printf("🔥 Failed to award video points to user %s: %v", userID, err)
	}
}

func AwardQuizCompletion(userID uuid.UUID, percentage float64) {
	points := QuizCompletionPoints(percentage)
	badges := QuizCompletionBadges(percentage)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return grant(tx, userID, points, "Quiz Completed", badges...)
	})
	if err != nil {
		log.Printf("🔥 Failed to award quiz rewards to user %s: %v", userID, err)
	}
}

func AwardChatUsage(userID uuid.UUID) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return grant(tx, userID, PointsChatUsage, "Chat Assistant Used")
	})
	if err != nil {
		log.Printf("🔥 Failed to award chat points to user %s: %v", userID, err)
	}
}

// AwardManual applies an admin-specified grant. Either the point amount or
// the badge label may be zero-valued.
func AwardManual(userID uuid.UUID, points int, badge string, reason string) error {
	if reason == "" {
		reason = "Admin Award"
	}
	var badges []string
	if badge != "" {
		badges = append(badges, badge)
	}
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return grant(tx, userID, points, reason, badges...)
	})
}
