package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuizCompletionPoints(t *testing.T) {
	tests := []struct {
		percentage float64
		points     int
	}{
		{100, 100},
		{95, 100},
		{90, 100},
		{89.9, 75},
		{80, 75},
		{79.9, 50},
		{70, 50},
		{69.9, 0},
		{50, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.points, QuizCompletionPoints(tt.percentage), "percentage %.1f", tt.percentage)
	}
}

func TestQuizCompletionBadges(t *testing.T) {
	assert.Equal(t, []string{BadgeQuizTaker, BadgePerfectScore}, QuizCompletionBadges(100))

	// 95% earns the top point tier but not the perfect-score badge.
	assert.Equal(t, []string{BadgeQuizTaker}, QuizCompletionBadges(95))

	// Quiz Taker is awarded even below the lowest point tier.
	assert.Equal(t, []string{BadgeQuizTaker}, QuizCompletionBadges(50))
	assert.Equal(t, []string{BadgeQuizTaker}, QuizCompletionBadges(0))
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	assert.Equal(t, 4, NextStreak(&yesterday, 3, now))

	sameDay := now.Add(-2 * time.Hour)
	assert.Equal(t, 3, NextStreak(&sameDay, 3, now))

	threeDaysAgo := now.AddDate(0, 0, -3)
	assert.Equal(t, 1, NextStreak(&threeDaysAgo, 7, now))

	assert.Equal(t, 1, NextStreak(nil, 0, now))
}

// Activity just before midnight followed by activity just after must count
// as consecutive days, including when the stored timestamp is in UTC and the
// server clock is not.
func TestNextStreakAcrossMidnight(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	lateNight := time.Date(2025, 6, 10, 23, 30, 0, 0, ist)
	justAfter := time.Date(2025, 6, 11, 0, 30, 0, 0, ist)
	assert.Equal(t, 4, NextStreak(&lateNight, 3, justAfter))

	// Same pair, last activity stored in UTC (18:00 UTC == 23:30 IST).
	lateNightUTC := lateNight.UTC()
	assert.Equal(t, 4, NextStreak(&lateNightUTC, 3, justAfter))

	// Still the same calendar day on both sides of a UTC midnight.
	morning := time.Date(2025, 6, 11, 1, 0, 0, 0, ist)
	evening := time.Date(2025, 6, 11, 23, 0, 0, 0, ist)
	assert.Equal(t, 3, NextStreak(&morning, 3, evening))
}
