package services

import (
	"context"

	"bizcore/models"
)

// ClassifierService defines the interface for intent classification
type ClassifierService interface {
	Classify(ctx context.Context, text string) models.ClassificationResult
}

// QueriesService defines the interface for the read-only command handlers
type QueriesService interface {
	Metrics(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
	Client(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
	Leads(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
	Revenue(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
	Support(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
	Tasks(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult
}

// ActionsService defines the interface for the side-effecting command handlers
type ActionsService interface {
	CreateTask(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult
	TriggerReport(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult
	RunForecast(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult
	SalesFollowup(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult
	UpdateStage(ctx context.Context, cmdCtx models.CommandContext) models.ActionResult
}

// SynthesizerService defines the interface for reply synthesis
type SynthesizerService interface {
	Synthesize(ctx context.Context, result models.HandlerResult, intent models.Intent, rawText string) string
}
