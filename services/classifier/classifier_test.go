package classifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bizcore/clients/anthropic"
	"bizcore/models"
)

func TestClassifierService_Classify(t *testing.T) {
	t.Run("ValidAnswer", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse(`{"intent": "leads", "confidence": 0.92, "entities": {"timeframe": "this week"}}`)
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "How many leads this week?")

		assert.Equal(t, models.IntentLeads, result.Intent)
		assert.InDelta(t, 0.92, result.Confidence, 0.001)
		assert.Equal(t, "this week", result.Entities["timeframe"])
	})

	t.Run("CapabilityFailure", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionError(fmt.Errorf("capability unavailable"))
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "How many leads this week?")

		assert.Equal(t, models.IntentGeneral, result.Intent)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Empty(t, result.Entities)
	})

	t.Run("UnparseableAnswer", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse("I think this is about leads, probably.")
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "How many leads this week?")

		assert.Equal(t, models.IntentGeneral, result.Intent)
		assert.Equal(t, 0.0, result.Confidence)
	})

	t.Run("UnknownIntentFailsClosed", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse(`{"intent": "delete_everything", "confidence": 0.99, "entities": {}}`)
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "delete everything")

		assert.Equal(t, models.IntentGeneral, result.Intent)
	})

	t.Run("ConfidenceClampedToUnitInterval", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse(`{"intent": "metrics", "confidence": 7.5, "entities": {}}`)
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "show me the numbers")

		assert.Equal(t, models.IntentMetrics, result.Intent)
		assert.Equal(t, 1.0, result.Confidence)
	})

	t.Run("IntentCaseNormalized", func(t *testing.T) {
		mockClient := anthropic.NewMockCompletionClient().
			WithCompletionResponse(`{"intent": " Create_Task ", "confidence": 0.8, "entities": {}}`)
		service := NewClassifierService(mockClient)

		result := service.Classify(context.Background(), "make me a task")

		assert.Equal(t, models.IntentCreateTask, result.Intent)
	})
}
