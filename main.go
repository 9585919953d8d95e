package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/slack-go/slack"

	"bizcore/clients/anthropic"
	"bizcore/clients/jobrunner"
	"bizcore/clients/tasktracker"
	"bizcore/config"
	"bizcore/db"
	"bizcore/handlers"
	"bizcore/middleware"
	"bizcore/services/actionlog"
	"bizcore/services/actions"
	"bizcore/services/classifier"
	"bizcore/services/queries"
	"bizcore/services/synthesizer"
	"bizcore/usecases/commands"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Repositories
	leadsRepo := db.NewPostgresLeadsRepository(dbConn, cfg.DatabaseSchema)
	clientsRepo := db.NewPostgresClientsRepository(dbConn, cfg.DatabaseSchema)
	ticketsRepo := db.NewPostgresSupportTicketsRepository(dbConn, cfg.DatabaseSchema)
	paymentsRepo := db.NewPostgresPaymentsRepository(dbConn, cfg.DatabaseSchema)

	// Collaborator clients
	completionClient := anthropic.NewCompletionClient(cfg.AnthropicConfig.APIKey, cfg.AnthropicConfig.Model)
	taskTrackerClient := tasktracker.NewTaskTrackerClient(
		cfg.TaskTrackerConfig.BaseURL, cfg.TaskTrackerConfig.APIKey)
	jobRunnerClient := jobrunner.NewJobRunnerClient(cfg.JobsBaseURL)

	if !cfg.TaskTrackerConfig.IsConfigured() {
		log.Printf("⚠️ Task tracker not configured - task queries will report it as unavailable")
	}

	// Services
	classifierService := classifier.NewClassifierService(completionClient)
	queriesService := queries.NewQueriesService(
		leadsRepo, clientsRepo, ticketsRepo, paymentsRepo, taskTrackerClient)
	actionsService := actions.NewActionsService(
		completionClient, taskTrackerClient, jobRunnerClient, leadsRepo)
	synthesizerService := synthesizer.NewSynthesizerService(completionClient)
	actionLog := actionlog.NewInMemoryRecorder()

	commandsUseCase := commands.NewCommandsUseCase(
		classifierService, queriesService, actionsService, synthesizerService, actionLog)

	// HTTP surface
	commandsHandler := handlers.NewCommandsHTTPHandler(commandsUseCase)
	authMiddleware := middleware.NewAPIKeyAuthMiddleware(cfg.AdminAPIKey)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/commands", authMiddleware.WithAuth(commandsHandler.HandleProcessCommand))
	router.HandleFunc("/api/v1/actionlog", authMiddleware.WithAuth(commandsHandler.HandleActionLog))

	if cfg.SlackConfig.IsConfigured() {
		slackClient := slack.New(cfg.SlackConfig.BotToken)
		slackHandler := handlers.NewSlackCommandsHandler(
			slackClient, cfg.SlackConfig.SigningSecret, commandsUseCase)
		router.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand)
		log.Printf("✅ Slack commands endpoint registered")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSAllowedOrigins},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	log.Printf("✅ Listening on http://localhost:%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
