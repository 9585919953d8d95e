package synthesizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bizcore/clients"
	"bizcore/models"
)

const synthesizeInstruction = `You summarize structured business data for an administrator.
Given the administrator's question and the data that answered it, write a short, direct reply
in plain language. Mention the concrete numbers. Do not invent data that is not present.`

// SynthesizerService turns a structured handler result back into natural
// language. It never fails the command: if prose generation fails, the
// caller gets a readable serialization of the payload instead.
type SynthesizerService struct {
	completionClient clients.CompletionClient
}

func NewSynthesizerService(completionClient clients.CompletionClient) *SynthesizerService {
	return &SynthesizerService{completionClient: completionClient}
}

// Synthesize produces the reply text for one command
func (s *SynthesizerService) Synthesize(
	ctx context.Context,
	result models.HandlerResult,
	intent models.Intent,
	rawText string,
) string {
	log.Printf("📋 Starting to synthesize reply for %s command", intent)

	prompt := fmt.Sprintf("The administrator asked: %q\n\nThe %s handler returned:\n%s",
		rawText, intent, renderPayload(result))

	text, err := s.completionClient.Complete(ctx, synthesizeInstruction, prompt, false)
	if err != nil {
		log.Printf("⚠️ Reply synthesis failed, falling back to raw payload: %v", err)
		return renderPayload(result)
	}

	log.Printf("✅ Reply synthesized successfully")
	return text
}

// renderPayload serializes a handler result into readable text. This is
// both the prompt body and the capability-failure fallback.
func renderPayload(result models.HandlerResult) string {
	switch r := result.(type) {
	case models.QueryResult:
		return toReadableJSON(r.Data)
	case models.ActionResult:
		status := "failed"
		if r.Success {
			status = "succeeded"
		}
		text := fmt.Sprintf("Action %s: %s", status, r.Detail)
		if r.Payload != nil {
			text += "\n" + toReadableJSON(r.Payload)
		}
		return text
	default:
		return toReadableJSON(result)
	}
}

func toReadableJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
