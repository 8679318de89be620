package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ModuleID      uuid.UUID `gorm:"not null;index" json:"module_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"type:text;not null" json:"option_a"`
	OptionB       string    `gorm:"type:text;not null" json:"option_b"`
	OptionC       string    `gorm:"type:text;not null" json:"option_c"`
	OptionD       string    `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"correct_answer"`
	Explanation   string    `gorm:"type:text" json:"explanation"`

	CreatedAt time.Time `json:"created_at"`

	Module Module `gorm:"foreignkey:ModuleID" json:"-"`
}

// Option returns the option text for a label A-D, or "" for anything else.
func (q *Question) Option(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
