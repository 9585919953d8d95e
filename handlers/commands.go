package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bizcore/appctx"
	"bizcore/models"
	"bizcore/usecases/commands"
)

type CommandsHTTPHandler struct {
	commandsUseCase *commands.CommandsUseCase
}

func NewCommandsHTTPHandler(commandsUseCase *commands.CommandsUseCase) *CommandsHTTPHandler {
	return &CommandsHTTPHandler{commandsUseCase: commandsUseCase}
}

type ProcessCommandRequest struct {
	Text        string `json:"text"`
	VoiceOrigin bool   `json:"voice_origin"`
}

type ActionLogResponse struct {
	Entries []models.ActionLogEntry `json:"entries"`
}

// HandleProcessCommand accepts one administrative command and returns its
// Reply. Validation and authorization reject before the core is reached;
// past them the core always produces a reply.
func (h *CommandsHTTPHandler) HandleProcessCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Command request received from %s", r.RemoteAddr)

	if r.Method != http.MethodPost {
		log.Printf("❌ Invalid method: %s", r.Method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	caller, ok := appctx.GetCaller(r.Context())
	if !ok {
		log.Printf("❌ Caller not found in context")
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req ProcessCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode request body: %v", err)
		h.writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		log.Printf("❌ Empty command text from %s", caller.Name)
		h.writeErrorResponse(w, "command text is required", http.StatusBadRequest)
		return
	}

	reply, err := h.commandsUseCase.ProcessCommand(r.Context(), req.Text, req.VoiceOrigin)
	if err != nil {
		log.Printf("❌ Command processing rejected: %v", err)
		h.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		log.Printf("❌ Failed to encode reply: %v", err)
	}
}

// HandleActionLog returns the session's executed-action record
func (h *CommandsHTTPHandler) HandleActionLog(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Action log request received from %s", r.RemoteAddr)

	if r.Method != http.MethodGet {
		log.Printf("❌ Invalid method: %s", r.Method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := ActionLogResponse{Entries: h.commandsUseCase.ActionLog()}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Failed to encode action log: %v", err)
	}
}

func (h *CommandsHTTPHandler) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("❌ Failed to write error response: %v", err)
	}
}
