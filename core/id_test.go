package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		expected string
	}{
		{name: "simple prefix", prefix: "al", expected: "al"},
		{name: "uppercase prefix gets lowercased", prefix: "AL", expected: "al"},
		{name: "prefix with spaces gets trimmed", prefix: "  al  ", expected: "al"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewID(tc.prefix)

			parts := strings.Split(id, "_")
			require.Len(t, parts, 2, "ID should have exactly one underscore separating prefix and ULID")
			assert.Equal(t, tc.expected, parts[0])
			assert.Len(t, parts[1], 26, "ULID portion should be 26 characters")
		})
	}
}

func TestNewID_EmptyPrefixPanics(t *testing.T) {
	assert.Panics(t, func() { NewID("") })
	assert.Panics(t, func() { NewID("   ") })
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("al")
		require.False(t, seen[id], "IDs must be unique")
		seen[id] = true
	}
}
