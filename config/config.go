package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// IsConfigured returns true if all required Anthropic configuration is present
func (c AnthropicConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type TaskTrackerConfig struct {
	BaseURL string
	APIKey  string
}

// IsConfigured returns true if the task tracker is set up.
// The tracker is optional: an unconfigured tracker surfaces as a sentinel
// result, not an error.
func (c TaskTrackerConfig) IsConfigured() bool {
	return c.BaseURL != ""
}

type SlackConfig struct {
	BotToken      string
	SigningSecret string
}

// IsConfigured returns true if the Slack command surface is set up
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" && c.SigningSecret != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	AdminAPIKey        string
	JobsBaseURL        string

	// Collaborator configurations (grouped)
	AnthropicConfig   AnthropicConfig
	TaskTrackerConfig TaskTrackerConfig
	SlackConfig       SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	adminAPIKey, err := getEnvRequired("ADMIN_API_KEY")
	if err != nil {
		return nil, err
	}

	anthropicAPIKey, err := getEnvRequired("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}

	jobsBaseURL, err := getEnvRequired("JOBS_BASE_URL")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		AdminAPIKey:        adminAPIKey,
		JobsBaseURL:        jobsBaseURL,

		AnthropicConfig: AnthropicConfig{
			APIKey: anthropicAPIKey,
			Model:  getEnvWithDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		},
		TaskTrackerConfig: TaskTrackerConfig{
			BaseURL: getEnvWithDefault("TASK_TRACKER_URL", ""),
			APIKey:  getEnvWithDefault("TASK_TRACKER_API_KEY", ""),
		},
		SlackConfig: SlackConfig{
			BotToken:      getEnvWithDefault("SLACK_BOT_TOKEN", ""),
			SigningSecret: getEnvWithDefault("SLACK_SIGNING_SECRET", ""),
		},
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is required", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
