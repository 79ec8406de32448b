package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all service settings, populated from environment
// variables with sensible defaults.
type AppConfig struct {
	AgentName    string
	AgentVersion string

	// Web server.
	Port        string
	CORSOrigins string

	// Message validation.
	MaxMessageLength int

	// Conversation history retention.
	HistoryMaxEntries int
	HistoryMaxAge     time.Duration // 0 = unlimited

	// Weather provider.
	WeatherBaseURL string // empty = public wttr.in endpoint
	WeatherTimeout time.Duration

	// Response pool document.
	ResponsePoolPath string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		AgentName:         getenvDefault("AGENT_NAME", "AI Assistant"),
		AgentVersion:      getenvDefault("AGENT_VERSION", "2.0.0"),
		Port:              getenvDefault("PORT", "8080"),
		CORSOrigins:       getenvDefault("CORS_ORIGINS", "*"),
		MaxMessageLength:  getenvInt("MAX_MESSAGE_LENGTH", 5000),
		HistoryMaxEntries: getenvInt("MAX_CONVERSATION_HISTORY", 1000),
		WeatherBaseURL:    os.Getenv("WEATHER_BASE_URL"),
		ResponsePoolPath:  getenvDefault("RESPONSE_POOL_PATH", "responses.toml"),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		LogFormat:         getenvDefault("LOG_FORMAT", "text"),
	}

	// Weather fetch timeout: bounded so a slow upstream cannot hang a chat
	// request indefinitely.
	timeoutStr := getenvDefault("WEATHER_TIMEOUT", "7s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT: %w", err)
	}
	cfg.WeatherTimeout = timeout

	// History age retention is optional; unset means entries only expire by
	// count.
	if maxAgeStr := os.Getenv("HISTORY_MAX_AGE"); maxAgeStr != "" {
		maxAge, err := time.ParseDuration(maxAgeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid HISTORY_MAX_AGE: %w", err)
		}
		cfg.HistoryMaxAge = maxAge
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}
	if c.MaxMessageLength < 1 {
		return fmt.Errorf("invalid MAX_MESSAGE_LENGTH: %d", c.MaxMessageLength)
	}
	if c.HistoryMaxEntries < 1 {
		return fmt.Errorf("invalid MAX_CONVERSATION_HISTORY: %d", c.HistoryMaxEntries)
	}
	if c.WeatherTimeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
