package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/propsetu/realestate_guru/database"
	"github.com/propsetu/realestate_guru/llm"
	"github.com/propsetu/realestate_guru/models"
	"gorm.io/datatypes"
)

// DefaultResearchTopics is the canned topic list refreshed by the weekly job.
var DefaultResearchTopics = []string{
	"RERA compliance updates",
	"Property valuation methods",
	"Real estate market trends",
	"Legal framework changes",
	"Construction technology",
	"Green building standards",
	"Investment strategies",
	"Taxation updates",
	"Documentation processes",
	"Dispute resolution",
}

type researchResult struct {
	KeyPoints []string `json:"key_points"`
	Sources   []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Date  string `json:"date"`
	} `json:"sources"`
}

// ResearchTopic asks the assistant for structured research on one topic and
// stores the result as a ResearchNote. Notes are free-form reference
// material, not load-bearing for the learning flow.
func ResearchTopic(topic string) (*models.ResearchNote, error) {
	prompt := fmt.Sprintf(`Research current information about "%s" in the context of Indian real estate.

Provide:
1. Five key points covering the most important recent developments
2. A list of sources with title, url and date

Format as JSON with this structure:
{
    "key_points": ["point 1", "point 2"],
    "sources": [{"title": "Source title", "url": "https://example.com", "date": "2025-01-01"}]
}`, topic)

	note := models.ResearchNote{
		Topic:     topic,
		KeyPoints: datatypes.JSON(`[]`),
		Sources:   datatypes.JSON(`[]`),
		Status:    "pending",
	}

	reply := llm.DefaultClient.GetResponse(prompt)

	var result researchResult
	if block := extractJSONBlock(reply); block != "" {
		if err := json.Unmarshal([]byte(block), &result); err == nil && len(result.KeyPoints) > 0 {
			keyPoints, _ := json.Marshal(result.KeyPoints)
			sources, _ := json.Marshal(result.Sources)
			note.KeyPoints = datatypes.JSON(keyPoints)
			note.Sources = datatypes.JSON(sources)
			note.Status = "completed"
		}
	}

	if err := database.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// RefreshResearchNotes re-researches the canned topic list. Failures on
// individual topics are logged and skipped.
func RefreshResearchNotes() {
	log.Println("Running job: RefreshResearchNotes...")
	for _, topic := range DefaultResearchTopics {
		if _, err := ResearchTopic(topic); err != nil {
			log.Printf("🔥 Failed to store research note for %q: %v", topic, err)
		}
	}
}

func extractJSONBlock(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
