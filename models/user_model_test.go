package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestAddBadgeIsIdempotent(t *testing.T) {
	user := User{Badges: datatypes.JSON(`[]`)}

	assert.True(t, user.AddBadge("Welcome Learner"))
	assert.False(t, user.AddBadge("Welcome Learner"))
	assert.Equal(t, []string{"Welcome Learner"}, user.BadgeList())

	assert.True(t, user.AddBadge("Quiz Taker"))
	assert.Equal(t, []string{"Welcome Learner", "Quiz Taker"}, user.BadgeList())
}

func TestHasBadgeOnEmptySet(t *testing.T) {
	user := User{}
	assert.False(t, user.HasBadge("Quiz Taker"))
	assert.Empty(t, user.BadgeList())
}

func TestQuestionOption(t *testing.T) {
	q := Question{OptionA: "Land only", OptionB: "Land and structures", OptionC: "Buildings only", OptionD: "Financial aspects"}

	assert.Equal(t, "Land and structures", q.Option("B"))
	assert.Equal(t, "", q.Option("E"))
	assert.Equal(t, "", q.Option(""))
}
