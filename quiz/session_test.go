package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionRejectsEmptyQuiz(t *testing.T) {
	_, err := NewSession(0)
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = NewSession(-1)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestStartResetsAnswers(t *testing.T) {
	s, err := NewSession(2)
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, s.State)

	s.Start()
	_, err = s.Next("A")
	require.NoError(t, err)
	assert.Len(t, s.Answers, 1)

	s.Start()
	assert.Equal(t, StateInProgress, s.State)
	assert.Equal(t, 0, s.Index)
	assert.Empty(t, s.Answers)
}

func TestNextFinishesOnlyOnLastQuestion(t *testing.T) {
	s, err := NewSession(3)
	require.NoError(t, err)
	s.Start()

	finished, err := s.Next("A")
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, s.Index)

	finished, err = s.Next("B")
	require.NoError(t, err)
	assert.False(t, finished)

	finished, err = s.Next("C")
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, StateFinished, s.State)

	// A finished session no longer accepts answers, so completion side
	// effects cannot fire twice.
	_, err = s.Next("D")
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestPreviousKeepsRecordedAnswer(t *testing.T) {
	s, err := NewSession(3)
	require.NoError(t, err)
	s.Start()

	_, err = s.Next("A")
	require.NoError(t, err)

	require.NoError(t, s.Previous())
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, "A", s.Answers[0])

	assert.ErrorIs(t, s.Previous(), ErrAtFirstQuestion)
}

func TestScoreCountsMatchingAnswers(t *testing.T) {
	s, err := NewSession(2)
	require.NoError(t, err)
	s.Start()

	_, err = s.Next("B")
	require.NoError(t, err)
	finished, err := s.Next("A")
	require.NoError(t, err)
	require.True(t, finished)

	score, percentage := s.Score([]string{"B", "C"})
	assert.Equal(t, 1, score)
	assert.Equal(t, 50.0, percentage)
}

func TestScoreIgnoresUnvisitedIndexes(t *testing.T) {
	s, err := NewSession(4)
	require.NoError(t, err)
	s.Start()

	_, err = s.Next("A")
	require.NoError(t, err)

	score, percentage := s.Score([]string{"A", "B", "C", "D"})
	assert.Equal(t, 1, score)
	assert.Equal(t, 25.0, percentage)
}

func TestPerfectScore(t *testing.T) {
	s, err := NewSession(2)
	require.NoError(t, err)
	s.Start()

	_, err = s.Next("B")
	require.NoError(t, err)
	_, err = s.Next("C")
	require.NoError(t, err)

	score, percentage := s.Score([]string{"B", "C"})
	assert.Equal(t, 2, score)
	assert.Equal(t, 100.0, percentage)
}

func TestRetakeRequiresFinishedState(t *testing.T) {
	s, err := NewSession(1)
	require.NoError(t, err)
	s.Start()
	assert.ErrorIs(t, s.Retake(), ErrNotFinished)

	finished, err := s.Next("A")
	require.NoError(t, err)
	require.True(t, finished)

	require.NoError(t, s.Retake())
	assert.Equal(t, StateNotStarted, s.State)
	assert.Empty(t, s.Answers)
}
