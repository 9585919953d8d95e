package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdownFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json untouched",
			input:    `{"intent": "leads"}`,
			expected: `{"intent": "leads"}`,
		},
		{
			name:     "json fence removed",
			input:    "```json\n{\"intent\": \"leads\"}\n```",
			expected: `{"intent": "leads"}`,
		},
		{
			name:     "plain fence removed",
			input:    "```\n{\"intent\": \"leads\"}\n```",
			expected: `{"intent": "leads"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  {\"a\": 1}  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripMarkdownFences(tc.input))
		})
	}
}
