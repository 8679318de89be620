package models

import (
	"time"

	"github.com/google/uuid"
)

type Module struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Difficulty  string    `gorm:"size:20;not null" json:"difficulty"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Content     string    `gorm:"type:text" json:"content"`
	YouTubeURL  *string   `gorm:"size:255" json:"youtube_url"`
	// ISO 8601 duration of the video, e.g. PT15M30S.
	VideoDuration string `gorm:"size:32" json:"video_duration"`
	OrderIndex    int    `gorm:"default:0" json:"order_index"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
