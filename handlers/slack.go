package handlers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/slack-go/slack"

	"bizcore/usecases/commands"
)

// SlackCommandsHandler exposes the command core as a Slack slash command.
// Requests are signature-verified; the reply is posted back to the channel
// asynchronously so Slack's 3-second acknowledgement window is honored.
type SlackCommandsHandler struct {
	slackClient     *slack.Client
	signingSecret   string
	commandsUseCase *commands.CommandsUseCase
}

func NewSlackCommandsHandler(
	slackClient *slack.Client,
	signingSecret string,
	commandsUseCase *commands.CommandsUseCase,
) *SlackCommandsHandler {
	return &SlackCommandsHandler{
		slackClient:     slackClient,
		signingSecret:   signingSecret,
		commandsUseCase: commandsUseCase,
	}
}

// HandleSlashCommand processes the /bizcore slash command
func (h *SlackCommandsHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Slack command received from %s", r.RemoteAddr)

	var buf bytes.Buffer
	tee := io.TeeReader(r.Body, &buf)

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		log.Printf("❌ Invalid secret verifier: %v", err)
		http.Error(w, "invalid secret verifier", http.StatusUnauthorized)
		return
	}

	if _, err := io.Copy(&verifier, tee); err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "signature verification failed", http.StatusUnauthorized)
		return
	}

	log.Printf("✅ Slack signature verification successful")

	r.Body = io.NopCloser(&buf)

	command, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ Failed to parse slash command: %v", err)
		http.Error(w, "failed to parse slash command", http.StatusInternalServerError)
		return
	}

	if command.Command != "/bizcore" {
		log.Printf("⚠️ Unknown slash command: %s", command.Command)
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("🎯 Processing /bizcore command with text: %s", command.Text)
	w.WriteHeader(http.StatusOK)

	// the request context dies once we acknowledge, so the background
	// processing gets its own
	go func() {
		reply, err := h.commandsUseCase.ProcessCommand(context.Background(), command.Text, false)
		if err != nil {
			log.Printf("❌ Slash command rejected: %v", err)
			return
		}

		_, _, err = h.slackClient.PostMessage(command.ChannelID,
			slack.MsgOptionText(reply.Text, false),
		)
		if err != nil {
			log.Printf("❌ Failed to post reply: %v", err)
		} else {
			log.Printf("✅ Reply posted successfully to channel %s", command.ChannelID)
		}
	}()
}
