package timewin

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	now := time.Date(2025, time.March, 18, 15, 42, 7, 0, time.UTC)

	testCases := []struct {
		name     string
		hint     mo.Option[string]
		expected time.Time
	}{
		{
			name:     "today hint resolves to start of day",
			hint:     mo.Some("today"),
			expected: time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "today embedded in a sentence",
			hint:     mo.Some("how are we doing today?"),
			expected: time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week hint resolves to rolling 7 days",
			hint:     mo.Some("this week"),
			expected: now.AddDate(0, 0, -7),
		},
		{
			name:     "uppercase hint is normalized",
			hint:     mo.Some("THIS WEEK"),
			expected: now.AddDate(0, 0, -7),
		},
		{
			name:     "no hint defaults to start of month",
			hint:     mo.None[string](),
			expected: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unrecognized hint defaults to start of month",
			hint:     mo.Some("last quarter"),
			expected: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "today wins when both today and week appear",
			hint:     mo.Some("today this week"),
			expected: time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.hint, now))
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	now := time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC)
	hint := mo.Some("this week please")

	first := Resolve(hint, now)
	second := Resolve(hint, now)

	assert.Equal(t, first, second, "same hint and instant must resolve to the same window")
}
