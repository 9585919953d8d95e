package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"bizcore/clients"
)

const defaultMaxTokens = 1024

// CompletionClient implements clients.CompletionClient using the Anthropic
// Messages API.
type CompletionClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewCompletionClient creates a new Anthropic-backed completion client.
// The model string comes from configuration so deployments can pin a model
// without a code change.
func NewCompletionClient(apiKey, model string) clients.CompletionClient {
	return &CompletionClient{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(30*time.Second),
		),
		model: anthropic.Model(model),
	}
}

// Complete sends one system instruction plus user prompt and returns the
// text of the completion. When wantStructuredJSON is set, the instruction is
// extended to demand a bare JSON object and common markdown fencing is
// stripped from the answer before it is returned.
func (c *CompletionClient) Complete(
	ctx context.Context,
	systemInstruction, userPrompt string,
	wantStructuredJSON bool,
) (string, error) {
	if userPrompt == "" {
		return "", fmt.Errorf("user prompt cannot be empty")
	}

	system := systemInstruction
	if wantStructuredJSON {
		system += "\n\nRespond with a single JSON object only. No prose, no markdown fences."
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		sb.WriteString(block.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("completion returned no text content")
	}

	if wantStructuredJSON {
		text = stripMarkdownFences(text)
	}

	return text, nil
}

// stripMarkdownFences removes a surrounding ```json ... ``` block if the
// model added one despite the instruction.
func stripMarkdownFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
