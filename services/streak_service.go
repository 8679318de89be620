package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/models"
)

// NextStreak computes the streak after an activity at now: unchanged on the
// same calendar day, incremented when the last activity was yesterday, reset
// to 1 after a longer gap or when no prior activity exists.
func NextStreak(lastActivity *time.Time, current int, now time.Time) int {
	if lastActivity == nil {
		return 1
	}

	// Both instants are read as calendar dates in now's location: an
	// activity at 23:30 followed by one at 00:30 is a one-day gap, which
	// Truncate against the epoch would miss.
	gap := calendarDay(now) - calendarDay(lastActivity.In(now.Location()))

	switch {
	case gap == 0:
		return current
	case gap == 1:
		return current + 1
	}
	return 1
}

// calendarDay numbers dates so consecutive days differ by exactly one.
func calendarDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// TouchActivity records that the user did something today and keeps the
// streak counter in step.
func TouchActivity(userID uuid.UUID) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("🔥 Failed to load user %s for activity update: %v", userID, err)
		return
	}

	now := time.Now()
	user.StreakDays = NextStreak(user.LastActivityAt, user.StreakDays, now)
	user.LastActivityAt = &now

	if err := database.DB.Save(&user).Error; err != nil {
		log.Printf("🔥 Failed to update activity for user %s: %v", userID, err)
	}
}

// ResetIdleStreaks zeroes the streak of every user whose last activity is
// more than one calendar day old. Run daily from the cron scheduler.
func ResetIdleStreaks() {
	now := time.Now()
	y, m, d := now.Date()
	// Start of yesterday in local time: activity yesterday keeps the
	// streak alive because it can still be continued today.
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	result := database.DB.Model(&models.User{}).
		Where("streak_days > 0 AND (last_activity_at IS NULL OR last_activity_at < ?)", cutoff).
		Update("streak_days", 0)

	if result.Error != nil {
		log.Printf("🔥 Failed to reset idle streaks: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Reset streaks for %d idle users.", result.RowsAffected)
	}
}
