package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	c := NewClient("test-key")
	c.BaseURL = url
	return c
}

func TestGetResponseReturnsReply(t *testing.T) {
	var gotAuth string
	var gotPayload completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"RERA was enacted in 2016."}}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	reply := c.GetResponse("When was RERA enacted?")

	assert.Equal(t, "RERA was enacted in 2016.", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "deepseek-chat", gotPayload.Model)
	assert.Equal(t, 0.7, gotPayload.Temperature)
	assert.Equal(t, 1000, gotPayload.MaxTokens)
	assert.False(t, gotPayload.Stream)
	require.Len(t, gotPayload.Messages, 2)
	assert.Equal(t, "system", gotPayload.Messages[0].Role)
	assert.Equal(t, "user", gotPayload.Messages[1].Role)
	assert.Equal(t, "When was RERA enacted?", gotPayload.Messages[1].Content)
}

func TestGetResponseApologizesOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	assert.Equal(t, ApologyMessage, c.GetResponse("hello"))
}

func TestGetResponseApologizesOnMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	assert.Equal(t, ApologyMessage, c.GetResponse("hello"))
}

func TestGetResponseApologizesOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.HTTPClient = &http.Client{Timeout: 10 * time.Millisecond}
	assert.Equal(t, ApologyMessage, c.GetResponse("hello"))
}

func TestGenerateQuizQuestionsParsesJSONBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := "Here are your questions:\n" +
			`{"questions":[{"question":"What does RERA stand for?","options":["A. Real Estate Regulation Act","B. Real Estate Regulatory Authority","C. Real Estate Registration Act","D. Real Estate Rights Act"],"correct_answer":"A","explanation":"Real Estate Regulation Act"}]}`
		w.Write([]byte(`{"choices":[{"message":{"content":` + mustJSONString(reply) + `}}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	questions, err := c.GenerateQuizQuestions("RERA", "intermediate", 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What does RERA stand for?", questions[0].Question)
	assert.Equal(t, "A", questions[0].CorrectAnswer)
	assert.Len(t, questions[0].Options, 4)
}

func TestGenerateQuizQuestionsRejectsReplyWithoutJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"I cannot help with that."}}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GenerateQuizQuestions("RERA", "intermediate", 1)
	assert.Error(t, err)
}

func mustJSONString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
