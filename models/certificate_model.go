package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"not null;index" json:"user_id"`
	ModuleID       uuid.UUID `gorm:"not null" json:"module_id"`
	CourseTitle    string    `gorm:"size:255;not null" json:"course_title"`
	CompletionDate time.Time `json:"completion_date"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`

	Module Module `gorm:"foreignkey:ModuleID" json:"-"`
}
