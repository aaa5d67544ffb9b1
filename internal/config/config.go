package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	DefaultPort          = 3000
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

var (
	ErrMissingMongoURI     = errors.New("MONGO_URI is not defined")
	ErrMissingGeminiAPIKey = errors.New("GEMINI_API_KEY is not defined")
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Gemini   GeminiConfig
	LogLevel zerolog.Level
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

type MongoConfig struct {
	URI            string
	ConnectTimeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads configuration from the environment, after loading a .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("READ_TIMEOUT", "10s")
	v.SetDefault("WRITE_TIMEOUT", "0s")
	v.SetDefault("IDLE_TIMEOUT", "1m")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("GEMINI_BASE_URL", DefaultGeminiBaseURL)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("LOG_LEVEL", "info")

	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("LOG_LEVEL")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           port,
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
			ReadTimeout:    v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:   v.GetDuration("WRITE_TIMEOUT"),
			IdleTimeout:    v.GetDuration("IDLE_TIMEOUT"),
		},
		Mongo: MongoConfig{
			URI:            v.GetString("MONGO_URI"),
			ConnectTimeout: v.GetDuration("MONGO_CONNECT_TIMEOUT"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			BaseURL: strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),
			Model:   v.GetString("GEMINI_MODEL"),
		},
		LogLevel: level,
	}

	return cfg, nil
}

// RequireMongo reports whether a connection string is configured.
func (c *Config) RequireMongo() error {
	if c.Mongo.URI == "" {
		return ErrMissingMongoURI
	}
	return nil
}

// RequireGeminiKey reports whether an upstream API key is configured.
func (c *Config) RequireGeminiKey() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingGeminiAPIKey
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
