package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bizcore/clients"
	"bizcore/models"
)

const classifyInstruction = `You classify administrative commands for a business operations assistant.
Given one command, answer with JSON: {"intent": "...", "confidence": 0.0-1.0, "entities": {...}}.
The intent must be exactly one of:
- metrics: overall business numbers and KPIs
- client: look up a specific client by name
- leads: lead pipeline counts and recent leads
- revenue: payments and revenue totals
- support: support ticket counts and recent tickets
- tasks: list open tasks
- create_task: create a new task
- trigger_report: generate a report
- run_forecast: run a revenue forecast
- sales_followup: schedule a follow-up with a client
- update_stage: move a lead to a different pipeline stage
- general: anything that fits none of the above
Put any names, dates or timeframes you can extract into entities.`

// ClassifierService turns raw command text into a taxonomy member. It is
// stateless between calls.
type ClassifierService struct {
	completionClient clients.CompletionClient
}

func NewClassifierService(completionClient clients.CompletionClient) *ClassifierService {
	return &ClassifierService{completionClient: completionClient}
}

// fallbackResult is what every failure path degrades to
func fallbackResult() models.ClassificationResult {
	return models.ClassificationResult{
		Intent:     models.IntentGeneral,
		Confidence: 0,
		Entities:   map[string]any{},
	}
}

// Classify maps text to a ClassificationResult. It never fails: any
// capability error or unparseable answer yields the general fallback with
// confidence 0.
func (s *ClassifierService) Classify(ctx context.Context, text string) models.ClassificationResult {
	log.Printf("📋 Starting to classify command: %.80q", text)

	completion, err := s.completionClient.Complete(ctx, classifyInstruction, text, true)
	if err != nil {
		log.Printf("⚠️ Classification capability failed, falling back to general: %v", err)
		return fallbackResult()
	}

	result, err := parseClassification(completion)
	if err != nil {
		log.Printf("⚠️ Could not parse classification answer, falling back to general: %v", err)
		return fallbackResult()
	}

	log.Printf("✅ Classified command as %s (confidence %.2f)", result.Intent, result.Confidence)
	return result
}

// rawClassification mirrors the JSON shape the capability is instructed to
// return
type rawClassification struct {
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Entities   map[string]any `json:"entities"`
}

func parseClassification(completion string) (models.ClassificationResult, error) {
	var raw rawClassification
	if err := json.Unmarshal([]byte(strings.TrimSpace(completion)), &raw); err != nil {
		return models.ClassificationResult{}, fmt.Errorf("failed to unmarshal classification: %w", err)
	}

	if raw.Intent == "" {
		return models.ClassificationResult{}, fmt.Errorf("classification answer has no intent field")
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	entities := raw.Entities
	if entities == nil {
		entities = map[string]any{}
	}

	return models.ClassificationResult{
		Intent:     models.ParseIntent(strings.ToLower(strings.TrimSpace(raw.Intent))),
		Confidence: confidence,
		Entities:   entities,
	}, nil
}
