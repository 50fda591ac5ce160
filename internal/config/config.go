package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
// It is built once at startup and must not be modified afterwards.
type Config struct {
	// Server configuration
	ServerPort  string
	CORSOrigins []string

	// Groq configuration
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// Logging configuration
	LogLevel slog.Level
}

// fileConfig mirrors the optional YAML configuration file
type fileConfig struct {
	Server struct {
		Port        string   `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Groq struct {
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"groq"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

const (
	DefaultServerPort  = "8000"
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultLogLevel    = "info"
)

// LoadConfig loads configuration from command-line flags, environment variables,
// an optional .env file and an optional YAML file.
// Flags take precedence over environment variables, which take precedence over the YAML file.
//
// A missing GROQ_API_KEY is not an error: it is reported and the first
// completion request will fail instead.
func LoadConfig(args []string) (*Config, error) {
	flags := flag.NewFlagSet("server", flag.ContinueOnError)

	envFile := flags.String("env-file", ".env", "Path to a .env file")
	configFile := flags.String("config", "", "Path to a YAML configuration file (env: CONFIG_FILE)")
	serverPort := flags.String("server-port", "", "Server port (env: SERVER_PORT)")
	corsOrigins := flags.String("cors-origins", "", "Comma-separated list of allowed CORS origins (env: CORS_ALLOWED_ORIGINS)")
	groqKey := flags.String("groq-key", "", "Groq API key (env: GROQ_API_KEY)")
	groqBaseURL := flags.String("groq-base-url", "", "Groq OpenAI-compatible API base URL (env: GROQ_BASE_URL)")
	groqModel := flags.String("groq-model", "", "Model for chat completions (env: GROQ_MODEL)")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn or error (env: LOG_LEVEL)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Process environment always wins over the .env file
	if err := godotenv.Load(*envFile); err != nil {
		slog.Debug("No .env file loaded", "path", *envFile, "error", err)
	}

	file, err := loadFile(pick(*configFile, os.Getenv("CONFIG_FILE")))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:  pick(*serverPort, os.Getenv("SERVER_PORT"), file.Server.Port, DefaultServerPort),
		GroqAPIKey:  pick(*groqKey, os.Getenv("GROQ_API_KEY")),
		GroqBaseURL: pick(*groqBaseURL, os.Getenv("GROQ_BASE_URL"), file.Groq.BaseURL, DefaultGroqBaseURL),
		GroqModel:   pick(*groqModel, os.Getenv("GROQ_MODEL"), file.Groq.Model, DefaultGroqModel),
	}

	origins := pick(*corsOrigins, os.Getenv("CORS_ALLOWED_ORIGINS"))
	switch {
	case origins != "":
		cfg.CORSOrigins = splitList(origins)
	case len(file.Server.CORSOrigins) > 0:
		cfg.CORSOrigins = file.Server.CORSOrigins
	default:
		cfg.CORSOrigins = []string{"*"}
	}

	// Validate
	if _, err := strconv.ParseUint(cfg.ServerPort, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid server port %q: %w", cfg.ServerPort, err)
	}

	level := pick(*logLevel, os.Getenv("LOG_LEVEL"), file.Log.Level, DefaultLogLevel)
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if cfg.GroqAPIKey != "" {
		slog.Info("GROQ_API_KEY loaded", "length", len(cfg.GroqAPIKey))
	} else {
		slog.Warn("GROQ_API_KEY is missing, completion requests will fail")
	}

	return cfg, nil
}

// loadFile reads the YAML configuration file. An empty path yields an empty config.
func loadFile(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return fc, nil
}

// pick returns the first non-empty value
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
