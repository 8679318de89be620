package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResearchNote struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Topic     string         `gorm:"size:255;not null" json:"topic"`
	KeyPoints datatypes.JSON `gorm:"default:'[]'" json:"key_points"`
	Sources   datatypes.JSON `gorm:"default:'[]'" json:"sources"`
	Status    string         `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
