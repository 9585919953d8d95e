// Package commands orchestrates one command-processing cycle:
// received -> classified -> dispatched -> synthesized. The cycle is strictly
// sequential with no branching back, and past validation it always ends in a
// Reply - stage failures degrade into an error-flavored reply instead of
// aborting. Action commands are literal: every invocation attempts its side
// effect, with no deduplication of repeated identical commands.
package commands

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"bizcore/models"
	"bizcore/services"
	"bizcore/services/actionlog"
)

const helpText = `I can answer questions about your business metrics, clients, leads, revenue, support tickets and tasks, ` +
	`and I can create tasks, schedule follow-ups, move leads between stages, generate reports and run forecasts. ` +
	`Try "how many leads this week?" or "create a task to call Acme Corp".`

// CommandsUseCase wires the classifier, the handlers, the synthesizer and
// the action log into the command-processing pipeline.
type CommandsUseCase struct {
	classifier  services.ClassifierService
	queries     services.QueriesService
	actions     services.ActionsService
	synthesizer services.SynthesizerService
	actionLog   actionlog.Recorder
}

func NewCommandsUseCase(
	classifier services.ClassifierService,
	queries services.QueriesService,
	actions services.ActionsService,
	synthesizer services.SynthesizerService,
	actionLog actionlog.Recorder,
) *CommandsUseCase {
	return &CommandsUseCase{
		classifier:  classifier,
		queries:     queries,
		actions:     actions,
		synthesizer: synthesizer,
		actionLog:   actionLog,
	}
}

// ProcessCommand runs one command through the full pipeline and returns its
// Reply. The only error it returns is for missing command text; every
// failure past that point degrades into the reply itself.
func (u *CommandsUseCase) ProcessCommand(
	ctx context.Context,
	text string,
	voiceOrigin bool,
) (*models.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("command text cannot be empty")
	}

	log.Printf("📋 Starting to process command: %.80q (voice: %v)", text, voiceOrigin)

	cmdCtx := models.CommandContext{
		RawText:       text,
		TimeframeHint: deriveTimeframeHint(text),
		VoiceOrigin:   voiceOrigin,
	}

	classification := u.classifier.Classify(ctx, text)
	result, actionExecuted := u.dispatch(ctx, classification.Intent, cmdCtx)

	var replyText string
	if classification.Intent == models.IntentGeneral {
		// the general handler's reply is fixed help text, no prose generation
		replyText = helpText
	} else {
		replyText = u.synthesizer.Synthesize(ctx, result, classification.Intent, text)
	}

	log.Printf("✅ Command processed successfully: intent=%s action=%v", classification.Intent, actionExecuted)
	return &models.Reply{
		Text:           replyText,
		Intent:         classification.Intent,
		RawData:        result,
		ActionExecuted: actionExecuted,
	}, nil
}

// ActionLog exposes the session's executed-action record
func (u *CommandsUseCase) ActionLog() []models.ActionLogEntry {
	return u.actionLog.Entries()
}

// dispatch routes one intent to its handler. The switch is exhaustive over
// the taxonomy and fails closed to the general handler for anything else.
// Exactly one ActionLogEntry is appended per action dispatch, here and not
// in the handlers, so handlers stay free of logging side effects.
func (u *CommandsUseCase) dispatch(
	ctx context.Context,
	intent models.Intent,
	cmdCtx models.CommandContext,
) (models.HandlerResult, bool) {
	switch intent {
	case models.IntentMetrics:
		return u.queries.Metrics(ctx, cmdCtx), false
	case models.IntentClient:
		return u.queries.Client(ctx, cmdCtx), false
	case models.IntentLeads:
		return u.queries.Leads(ctx, cmdCtx), false
	case models.IntentRevenue:
		return u.queries.Revenue(ctx, cmdCtx), false
	case models.IntentSupport:
		return u.queries.Support(ctx, cmdCtx), false
	case models.IntentTasks:
		return u.queries.Tasks(ctx, cmdCtx), false
	case models.IntentCreateTask:
		return u.recordAction(intent, u.actions.CreateTask(ctx, cmdCtx)), true
	case models.IntentTriggerReport:
		return u.recordAction(intent, u.actions.TriggerReport(ctx, cmdCtx)), true
	case models.IntentRunForecast:
		return u.recordAction(intent, u.actions.RunForecast(ctx, cmdCtx)), true
	case models.IntentSalesFollowup:
		return u.recordAction(intent, u.actions.SalesFollowup(ctx, cmdCtx)), true
	case models.IntentUpdateStage:
		return u.recordAction(intent, u.actions.UpdateStage(ctx, cmdCtx)), true
	case models.IntentGeneral:
		return models.QueryResult{Data: models.HelpPayload{Help: helpText}}, false
	default:
		log.Printf("⚠️ Unknown intent %q, failing closed to general", intent)
		return models.QueryResult{Data: models.HelpPayload{Help: helpText}}, false
	}
}

func (u *CommandsUseCase) recordAction(intent models.Intent, result models.ActionResult) models.ActionResult {
	outcome := models.ActionOutcomeFailed
	if result.Success {
		outcome = models.ActionOutcomeSuccess
	}

	entry := u.actionLog.Append(string(intent), outcome)
	log.Printf("📋 Action logged: %s -> %s (%s)", entry.ActionName, entry.Outcome, entry.ID)

	return result
}

// deriveTimeframeHint pulls the timeframe wording out of the raw command.
// The hint stays None when the command says nothing about time, which later
// resolves to the start-of-month default window.
func deriveTimeframeHint(text string) mo.Option[string] {
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "today") {
		return mo.Some("today")
	}
	if strings.Contains(lowered, "week") {
		return mo.Some("week")
	}
	return mo.None[string]()
}
