// Package config loads Herald's configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/relforge/herald/internal/core"
)

// Config holds the application's configuration values. Tokens for the
// various downstream services are validated per task, so a digest run does
// not demand slide-service credentials.
type Config struct {
	ServerPort string
	LogLevel   slog.Level
	LogFormat  string

	// GitHub source: either a PAT or a GitHub App installation.
	GitHubToken          string
	GitHubAppID          int64
	GitHubInstallationID int64
	GitHubPrivateKeyPath string
	GitHubOrg            string
	GitHubRepo           string

	// Language model.
	LLMProvider        string
	OllamaHost         string
	GeneratorModelName string
	GeminiAPIKey       string

	// Destinations.
	ChangelogBaseURL string
	ChangelogAPIKey  string
	CDNUploadURL     string
	CDNAPIKey        string
	SlackToken       string
	SlackChannel     string
	SlidesBaseURL    string
	SlidesAPIKey     string

	// RulesPath points at an optional .herald.yml with publishing rules.
	RulesPath string
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the fields every task needs. It uses
// the Viper library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	viper.SetDefault("CHANGELOG_BASE_URL", "https://canny.io/api/v1")
	viper.SetDefault("RULES_PATH", ".herald.yml")

	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	if viper.GetString("GITHUB_ORG") == "" {
		return nil, fmt.Errorf("GITHUB_ORG must be set")
	}
	if viper.GetString("GITHUB_REPO") == "" {
		return nil, fmt.Errorf("GITHUB_REPO must be set")
	}
	if viper.GetString("GITHUB_TOKEN") == "" && viper.GetInt64("GITHUB_APP_ID") == 0 {
		return nil, fmt.Errorf("either GITHUB_TOKEN or GITHUB_APP_ID must be set")
	}

	// Special handling for the Gemini generator model name.
	generatorModel := viper.GetString("GENERATOR_MODEL_NAME")
	if viper.GetString("LLM_PROVIDER") == "gemini" {
		geminiModel := viper.GetString("GEMINI_GENERATOR_MODEL_NAME")
		if geminiModel != "" {
			generatorModel = geminiModel
		} else {
			generatorModel = "gemini-2.5-flash"
		}
	}

	return &Config{
		ServerPort:           viper.GetString("SERVER_PORT"),
		LogLevel:             parseLogLevel(viper.GetString("LOG_LEVEL")),
		LogFormat:            viper.GetString("LOG_FORMAT"),
		GitHubToken:          viper.GetString("GITHUB_TOKEN"),
		GitHubAppID:          viper.GetInt64("GITHUB_APP_ID"),
		GitHubInstallationID: viper.GetInt64("GITHUB_INSTALLATION_ID"),
		GitHubPrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
		GitHubOrg:            viper.GetString("GITHUB_ORG"),
		GitHubRepo:           viper.GetString("GITHUB_REPO"),
		LLMProvider:          viper.GetString("LLM_PROVIDER"),
		OllamaHost:           viper.GetString("OLLAMA_HOST"),
		GeneratorModelName:   generatorModel,
		GeminiAPIKey:         viper.GetString("GEMINI_API_KEY"),
		ChangelogBaseURL:     viper.GetString("CHANGELOG_BASE_URL"),
		ChangelogAPIKey:      viper.GetString("CHANGELOG_API_KEY"),
		CDNUploadURL:         viper.GetString("CDN_UPLOAD_URL"),
		CDNAPIKey:            viper.GetString("CDN_API_KEY"),
		SlackToken:           viper.GetString("SLACK_BOT_TOKEN"),
		SlackChannel:         viper.GetString("SLACK_CHANNEL"),
		SlidesBaseURL:        viper.GetString("SLIDES_BASE_URL"),
		SlidesAPIKey:         viper.GetString("SLIDES_API_KEY"),
		RulesPath:            viper.GetString("RULES_PATH"),
	}, nil
}

// ValidateFor checks the destination credentials a specific task needs.
// GitHub and LLM settings are already validated for every task by LoadConfig.
func (c *Config) ValidateFor(task core.TaskName) error {
	switch task {
	case core.TaskChangelog:
		if c.ChangelogAPIKey == "" {
			return fmt.Errorf("CHANGELOG_API_KEY must be set for the changelog task")
		}
		if c.CDNUploadURL == "" {
			return fmt.Errorf("CDN_UPLOAD_URL must be set for the changelog task")
		}
	case core.TaskDigest, core.TaskAuthors:
		if c.SlackToken == "" {
			return fmt.Errorf("SLACK_BOT_TOKEN must be set for the %s task", task)
		}
		if c.SlackChannel == "" {
			return fmt.Errorf("SLACK_CHANNEL must be set for the %s task", task)
		}
	case core.TaskSlides:
		if c.SlidesBaseURL == "" {
			return fmt.Errorf("SLIDES_BASE_URL must be set for the slides task")
		}
		if c.SlidesAPIKey == "" {
			return fmt.Errorf("SLIDES_API_KEY must be set for the slides task")
		}
	default:
		return fmt.Errorf("unknown task %q", task)
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", s)
		return slog.LevelInfo
	}
}
