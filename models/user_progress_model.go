package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress holds the most recent quiz outcome for a user/module pair.
// Each completion overwrites QuizScore and increments QuizAttempts; the
// historical maximum is not retained.
type UserProgress struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID  `gorm:"not null;uniqueIndex:idx_user_progress_user_module" json:"user_id"`
	ModuleID           uuid.UUID  `gorm:"not null;uniqueIndex:idx_user_progress_user_module" json:"module_id"`
	ProgressPercentage float64    `gorm:"default:0" json:"progress_percentage"`
	Completed          bool       `gorm:"default:false" json:"completed"`
	QuizScore          float64    `gorm:"default:0" json:"quiz_score"`
	QuizAttempts       int        `gorm:"default:0" json:"quiz_attempts"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`

	Module Module `gorm:"foreignkey:ModuleID" json:"module,omitempty"`
}
