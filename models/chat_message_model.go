package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn of a user's assistant transcript. The transcript
// is display-only; each outbound call to the assistant is single-turn.
type ChatMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"not null;index" json:"user_id"`
	Role    string    `gorm:"size:20;not null" json:"role"`
	Content string    `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}
