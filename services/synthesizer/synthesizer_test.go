package synthesizer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bizcore/clients/anthropic"
	"bizcore/models"
)

func TestSynthesizerService_Synthesize(t *testing.T) {
	t.Run("UsesCompletionText", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse("You got 7 new leads this week.")
		service := NewSynthesizerService(mockClient)

		text := service.Synthesize(
			context.Background(),
			models.QueryResult{Data: models.LeadStats{Total: 7}},
			models.IntentLeads,
			"How many leads this week?",
		)

		assert.Equal(t, "You got 7 new leads this week.", text)
	})

	t.Run("CapabilityFailureFallsBackToPayload", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionError(fmt.Errorf("capability unavailable"))
		service := NewSynthesizerService(mockClient)

		text := service.Synthesize(
			context.Background(),
			models.QueryResult{Data: models.LeadStats{Total: 7}},
			models.IntentLeads,
			"How many leads this week?",
		)

		assert.NotEmpty(t, text, "synthesis failure must never fail the command")
		assert.Contains(t, text, `"total": 7`)
	})

	t.Run("ActionResultFallbackNamesOutcome", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionError(fmt.Errorf("capability unavailable"))
		service := NewSynthesizerService(mockClient)

		text := service.Synthesize(
			context.Background(),
			models.ActionResult{Success: false, Detail: "report generation could not be started"},
			models.IntentTriggerReport,
			"generate the report",
		)

		assert.Contains(t, text, "failed")
		assert.Contains(t, text, "report generation could not be started")
	})
}
