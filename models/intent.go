package models

// Intent is the classified category of an administrative command.
// The set is closed: every incoming command maps to exactly one Intent,
// and IntentGeneral absorbs anything the classifier cannot place.
type Intent string

const (
	// Query intents (read-only)
	IntentMetrics Intent = "metrics"
	IntentClient  Intent = "client"
	IntentLeads   Intent = "leads"
	IntentRevenue Intent = "revenue"
	IntentSupport Intent = "support"
	IntentTasks   Intent = "tasks"

	// Action intents (side-effecting)
	IntentCreateTask    Intent = "create_task"
	IntentTriggerReport Intent = "trigger_report"
	IntentRunForecast   Intent = "run_forecast"
	IntentSalesFollowup Intent = "sales_followup"
	IntentUpdateStage   Intent = "update_stage"

	// Fallback for low-confidence or unrecognized commands
	IntentGeneral Intent = "general"
)

// AllIntents lists every member of the taxonomy, used to build the
// classifier instruction and to verify dispatch coverage in tests.
var AllIntents = []Intent{
	IntentMetrics,
	IntentClient,
	IntentLeads,
	IntentRevenue,
	IntentSupport,
	IntentTasks,
	IntentCreateTask,
	IntentTriggerReport,
	IntentRunForecast,
	IntentSalesFollowup,
	IntentUpdateStage,
	IntentGeneral,
}

// ParseIntent converts a raw string into an Intent, failing closed to
// IntentGeneral for anything outside the taxonomy.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentMetrics, IntentClient, IntentLeads, IntentRevenue, IntentSupport, IntentTasks,
		IntentCreateTask, IntentTriggerReport, IntentRunForecast, IntentSalesFollowup, IntentUpdateStage,
		IntentGeneral:
		return Intent(s)
	default:
		return IntentGeneral
	}
}

// IsAction reports whether the intent belongs to the side-effecting family.
func (i Intent) IsAction() bool {
	switch i {
	case IntentCreateTask, IntentTriggerReport, IntentRunForecast, IntentSalesFollowup, IntentUpdateStage:
		return true
	default:
		return false
	}
}
