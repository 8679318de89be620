package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username string    `gorm:"size:100;not null;unique" json:"username"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	Points     int            `gorm:"default:0" json:"points"`
	Badges     datatypes.JSON `gorm:"default:'[]'" json:"badges"`
	StreakDays int            `gorm:"default:0" json:"streak_days"`

	IsActive       bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt    *time.Time `json:"last_login_at"`
	LastActivityAt *time.Time `json:"last_activity_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BadgeList() []string {
	var badges []string
	if len(u.Badges) == 0 {
		return badges
	}
	if err := json.Unmarshal(u.Badges, &badges); err != nil {
		return nil
	}
	return badges
}

func (u *User) HasBadge(name string) bool {
	for _, b := range u.BadgeList() {
		if b == name {
			return true
		}
	}
	return false
}

// AddBadge appends the badge to the stored set and reports whether the set
// changed. Awarding a badge the user already holds is a no-op.
func (u *User) AddBadge(name string) bool {
	if u.HasBadge(name) {
		return false
	}
	badges := append(u.BadgeList(), name)
	raw, err := json.Marshal(badges)
	if err != nil {
		return false
	}
	u.Badges = datatypes.JSON(raw)
	return true
}
