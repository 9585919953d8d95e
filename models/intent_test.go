package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Intent
	}{
		{name: "known query intent", input: "leads", expected: IntentLeads},
		{name: "known action intent", input: "create_task", expected: IntentCreateTask},
		{name: "general", input: "general", expected: IntentGeneral},
		{name: "unknown fails closed", input: "delete_database", expected: IntentGeneral},
		{name: "empty fails closed", input: "", expected: IntentGeneral},
		{name: "case sensitive by design", input: "Leads", expected: IntentGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseIntent(tc.input))
		})
	}
}

func TestIntent_IsAction(t *testing.T) {
	queryIntents := []Intent{IntentMetrics, IntentClient, IntentLeads, IntentRevenue, IntentSupport, IntentTasks, IntentGeneral}
	actionIntents := []Intent{IntentCreateTask, IntentTriggerReport, IntentRunForecast, IntentSalesFollowup, IntentUpdateStage}

	for _, intent := range queryIntents {
		assert.False(t, intent.IsAction(), "%s is not an action", intent)
	}
	for _, intent := range actionIntents {
		assert.True(t, intent.IsAction(), "%s is an action", intent)
	}

	assert.Len(t, AllIntents, len(queryIntents)+len(actionIntents), "taxonomy is closed")
}

func TestParseTaskPriority(t *testing.T) {
	assert.Equal(t, TaskPriorityHigh, ParseTaskPriority("High"))
	assert.Equal(t, TaskPriorityLow, ParseTaskPriority("Low"))
	assert.Equal(t, TaskPriorityMedium, ParseTaskPriority(""))
	assert.Equal(t, TaskPriorityMedium, ParseTaskPriority("urgent"))
}
