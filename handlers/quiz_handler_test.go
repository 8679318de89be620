package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// The quiz stores answers by question index across separate requests, so the
// question query must carry a total order even when created_at values tie.
func TestQuizQuestionQueryHasDeterministicOrder(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var questions []models.Question
	stmt := quizQuestionQuery(db, uuid.New()).Find(&questions).Statement

	assert.Contains(t, stmt.SQL.String(), "ORDER BY created_at, id")
}

func TestEncodeDecodeAnswersRoundTrip(t *testing.T) {
	answers := map[int]string{0: "A", 2: "D", 7: "B"}

	decoded := decodeAnswers(encodeAnswers(answers))

	assert.Equal(t, answers, decoded)
}

func TestDecodeAnswersEmpty(t *testing.T) {
	decoded := decodeAnswers(nil)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecodeAnswersIgnoresMalformed(t *testing.T) {
	decoded := decodeAnswers(datatypes.JSON(`{"not a number": "A", "1": "C"}`))
	assert.Equal(t, map[int]string{1: "C"}, decoded)
}
