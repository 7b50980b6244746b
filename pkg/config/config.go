package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/scale"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// OpenAI configuration, optional
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// Application configuration
	DataDir           string
	CatalogPath       string
	SuggestionCount   int
	FractionTolerance float64
	LogLevel          logger.Level
}

// HasOpenAI reports whether an API key is configured
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// LoadFromEnv loads the bot configuration and requires BOT_TOKEN
func LoadFromEnv() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	return cfg, nil
}

// Load reads configuration from .env and the environment without requiring a bot token
func Load() (*Config, error) {
	log := logger.Global

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Error loading .env file: %v", err)
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIAPIBase: getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1"),
		OpenAIModel:   getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		DataDir:       getEnvWithDefault("DATA_DIR", "./data"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		LogLevel:      logger.ParseLevel(os.Getenv("LOG_LEVEL")),
	}

	cfg.SuggestionCount = getIntWithDefault("SUGGESTION_COUNT", 5)
	if cfg.SuggestionCount <= 0 {
		log.Warn("SUGGESTION_COUNT must be positive, using 5")
		cfg.SuggestionCount = 5
	}

	cfg.FractionTolerance = getFloatWithDefault("FRACTION_TOLERANCE", scale.DefaultTolerance)
	if cfg.FractionTolerance <= 0 || cfg.FractionTolerance >= 0.5 {
		log.Warn("FRACTION_TOLERANCE must be between 0 and 0.5, using %v", scale.DefaultTolerance)
		cfg.FractionTolerance = scale.DefaultTolerance
	}

	// Log configuration with sensitive data redacted
	log.Info("Configuration loaded: %+v", cfg.Redacted())
	return cfg, nil
}

// Redacted returns a copy of the config that is safe to log
func (c Config) Redacted() Config {
	c.BotToken = redact(c.BotToken)
	c.OpenAIAPIKey = redact(c.OpenAIAPIKey)
	return c
}

func redact(secret string) string {
	if len(secret) > 8 {
		return secret[:8] + "...REDACTED..."
	}
	if secret != "" {
		return "...REDACTED..."
	}
	return ""
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Global.Warn("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getFloatWithDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Global.Warn("Invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}
