package models

import (
	"github.com/samber/mo"
)

// ClassificationResult is the classifier's verdict for one command.
// Confidence is advisory only - handlers must behave correctly even at 0.
type ClassificationResult struct {
	Intent     Intent         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Entities   map[string]any `json:"entities"`
}

// CommandContext carries everything a handler may need about one incoming
// command. It is derived once per command and passed by value, so concurrent
// commands never share mutable state.
type CommandContext struct {
	RawText       string
	TimeframeHint mo.Option[string]
	VoiceOrigin   bool
}

// Reply is the externally visible output of one command-processing cycle.
// ActionExecuted is true only when an action handler ran, independent of
// whether the action itself succeeded.
type Reply struct {
	Text           string        `json:"text"`
	Intent         Intent        `json:"intent"`
	RawData        HandlerResult `json:"raw_data"`
	ActionExecuted bool          `json:"action_executed"`
}
