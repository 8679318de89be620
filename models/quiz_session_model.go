package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizSession is the persisted state of one learner walking through a
// module's quiz. One row per (user, module); a retake reuses the row.
type QuizSession struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID      `gorm:"not null;uniqueIndex:idx_quiz_sessions_user_module" json:"user_id"`
	ModuleID     uuid.UUID      `gorm:"not null;uniqueIndex:idx_quiz_sessions_user_module" json:"module_id"`
	State        string         `gorm:"size:20;not null;default:'not_started'" json:"state"`
	CurrentIndex int            `gorm:"default:0" json:"current_index"`
	Answers      datatypes.JSON `gorm:"default:'{}'" json:"answers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
