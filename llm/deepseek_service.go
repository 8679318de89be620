package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	config "github.com/propsetu/realestate_guru/configs"
)

// ApologyMessage is returned to the user on any transport error, timeout or
// malformed upstream payload. The assistant call is never retried and never
// surfaces as a server error.
const ApologyMessage = "Sorry, I'm having trouble connecting to the AI service."

const defaultBaseURL = "https://api.deepseek.com/v1/chat/completions"

const systemPrompt = `You are an expert Real Estate Education Assistant specializing in Indian real estate laws, regulations, and practices. You provide accurate, helpful, and educational responses about:

- RERA (Real Estate Regulation and Development Act) compliance
- Property valuation methods and techniques
- Legal documentation and procedures
- Investment strategies and market analysis
- Construction and technical aspects
- Taxation and financial planning
- Property measurements and standards
- Dispute resolution and consumer rights

Always provide practical, actionable advice while mentioning relevant legal frameworks and current market conditions in India.`

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

var DefaultClient *Client

func InitClient() {
	apiKey := config.Config("DEEPSEEK_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ DeepSeek API key not configured. Assistant replies will degrade to the apology message.")
	}
	DefaultClient = NewClient(apiKey)
	log.Println("✅ Assistant client initialized.")
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GetResponse sends one single-turn question to the assistant and returns the
// reply verbatim, or ApologyMessage on any failure. Prior transcript turns
// are never replayed.
func (c *Client) GetResponse(userInput string) string {
	reply, err := c.getCompletion(userInput)
	if err != nil {
		log.Printf("🔥 Assistant request failed: %v", err)
		return ApologyMessage
	}
	return reply
}

func (c *Client) getCompletion(userInput string) (string, error) {
	payload := completionRequest{
		Model: "deepseek-chat",
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userInput},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.BaseURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant request failed, status: %s", resp.Status)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("assistant response contained no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// AssessmentFeedback asks the assistant to explain a quiz answer.
func (c *Client) AssessmentFeedback(question, userAnswer, correctAnswer string) string {
	prompt := fmt.Sprintf(`Question: %s
User's Answer: %s
Correct Answer: %s

Please provide detailed feedback explaining:
1. Whether the user's answer is correct or incorrect
2. Why the correct answer is right
3. Key concepts the user should understand
4. Additional tips or resources for improvement`, question, userAnswer, correctAnswer)

	return c.GetResponse(prompt)
}

type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type generatedQuestionSet struct {
	Questions []GeneratedQuestion `json:"questions"`
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// GenerateQuizQuestions asks the assistant for multiple-choice questions on a
// topic and parses the JSON block out of its free-text reply.
func (c *Client) GenerateQuizQuestions(topic, difficulty string, count int) ([]GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`Generate %d multiple-choice questions about %s in Indian real estate.

Difficulty level: %s

For each question, provide:
1. Question text
2. Four options (A, B, C, D)
3. Correct answer
4. Brief explanation

Focus on practical knowledge and current regulations.
Format as JSON with this structure:
{
    "questions": [
        {
            "question": "Question text",
            "options": ["A. Option 1", "B. Option 2", "C. Option 3", "D. Option 4"],
            "correct_answer": "A",
            "explanation": "Brief explanation"
        }
    ]
}`, count, topic, difficulty)

	reply, err := c.getCompletion(prompt)
	if err != nil {
		return nil, err
	}

	block := jsonBlockPattern.FindString(reply)
	if block == "" {
		return nil, fmt.Errorf("assistant reply contained no JSON block")
	}

	var set generatedQuestionSet
	if err := json.Unmarshal([]byte(block), &set); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	return set.Questions, nil
}
