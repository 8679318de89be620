package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONBlock(t *testing.T) {
	reply := "Here is the research you asked for:\n" +
		`{"key_points": ["RERA penalties tightened"], "sources": []}` +
		"\nLet me know if you need more."

	assert.Equal(t, `{"key_points": ["RERA penalties tightened"], "sources": []}`, extractJSONBlock(reply))
}

func TestExtractJSONBlockHandlesNestedObjects(t *testing.T) {
	reply := `{"sources": [{"title": "MoHUA Guidelines", "url": "https://example.com"}]}`
	assert.Equal(t, reply, extractJSONBlock(reply))
}

func TestExtractJSONBlockWithoutJSON(t *testing.T) {
	assert.Equal(t, "", extractJSONBlock("no structured data here"))
}
