package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAchievement is an append-only log entry of a point or badge grant.
type UserAchievement struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"not null;index" json:"user_id"`
	AchievementType string    `gorm:"size:20;not null" json:"achievement_type"`
	AchievementName string    `gorm:"size:255;not null" json:"achievement_name"`
	PointsEarned    int       `gorm:"default:0" json:"points_earned"`
	EarnedAt        time.Time `json:"earned_at"`
}
