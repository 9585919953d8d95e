// Package timewin resolves a free-text timeframe hint into the start instant
// of a reporting window. Every time-scoped query handler shares this one
// rule so the windows cannot drift apart.
package timewin

import (
	"strings"
	"time"

	"github.com/samber/mo"
)

// Resolve maps a timeframe hint to a window start:
//   - hint containing "today" -> start of the current day
//   - hint containing "week"  -> rolling 7 days back from now
//   - anything else (or no hint) -> start of the current calendar month
//
// Resolution is total and deterministic for a given hint and instant.
func Resolve(hint mo.Option[string], now time.Time) time.Time {
	h := strings.ToLower(hint.OrElse(""))

	switch {
	case strings.Contains(h, "today"):
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case strings.Contains(h, "week"):
		return now.AddDate(0, 0, -7)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}
