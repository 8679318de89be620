package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/propsetu/realestate_guru/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionFromGeneratedStripsLabels(t *testing.T) {
	moduleID := uuid.New()
	g := llm.GeneratedQuestion{
		Question:      "What does RERA regulate?",
		Options:       []string{"A. Real estate projects", "B. Rent control", "C. Road transport", "D. Retail banking"},
		CorrectAnswer: "a",
		Explanation:   "RERA regulates real estate projects and agents.",
	}

	question, ok := questionFromGenerated(moduleID, g)

	require.True(t, ok)
	assert.Equal(t, moduleID, question.ModuleID)
	assert.Equal(t, "Real estate projects", question.OptionA)
	assert.Equal(t, "Rent control", question.OptionB)
	assert.Equal(t, "A", question.CorrectAnswer)
}

func TestQuestionFromGeneratedRejectsBadCorrectAnswer(t *testing.T) {
	g := llm.GeneratedQuestion{
		Question:      "A question",
		Options:       []string{"A. One", "B. Two", "C. Three", "D. Four"},
		CorrectAnswer: "E",
	}

	_, ok := questionFromGenerated(uuid.New(), g)
	assert.False(t, ok)
}

func TestQuestionFromGeneratedRejectsWrongOptionCount(t *testing.T) {
	g := llm.GeneratedQuestion{
		Question:      "A question",
		Options:       []string{"A. One", "B. Two"},
		CorrectAnswer: "A",
	}

	_, ok := questionFromGenerated(uuid.New(), g)
	assert.False(t, ok)
}

func TestQuestionFromGeneratedRejectsEmptyCorrectOption(t *testing.T) {
	g := llm.GeneratedQuestion{
		Question:      "A question",
		Options:       []string{"A. One", "B. Two", "C. Three", "D."},
		CorrectAnswer: "D",
	}

	_, ok := questionFromGenerated(uuid.New(), g)
	assert.False(t, ok)
}
