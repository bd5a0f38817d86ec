package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider selects the completion backend.
type Provider string

const (
	ProviderCerebras Provider = "cerebras"
	ProviderGemini   Provider = "gemini"
	ProviderOllama   Provider = "ollama"
	ProviderBedrock  Provider = "bedrock"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	Port string

	// Completion backend
	LLMProvider     Provider
	LLMModel        string
	CerebrasAPIKey  string
	CerebrasBaseURL string
	GeminiAPIKey    string
	GeminiBaseURL   string
	OllamaHost      string
	Temperature     float64
	MaxTokens       int

	// Web search
	SerperAPIKey  string
	SerperBaseURL string

	// Conversation memory
	HistoryLimit int

	// Upstream calls have no natural bound otherwise; a hung provider would
	// hold the request open forever.
	RequestTimeout time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors the YAML layout of an optional config file. Only set
// fields override defaults; environment variables override the file.
type fileConfig struct {
	Port            string  `yaml:"port"`
	Provider        string  `yaml:"provider"`
	Model           string  `yaml:"model"`
	CerebrasAPIKey  string  `yaml:"cerebras_api_key"`
	CerebrasBaseURL string  `yaml:"cerebras_base_url"`
	GeminiAPIKey    string  `yaml:"gemini_api_key"`
	GeminiBaseURL   string  `yaml:"gemini_base_url"`
	OllamaHost      string  `yaml:"ollama_host"`
	Temperature     float64 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	SerperAPIKey    string  `yaml:"serper_api_key"`
	SerperBaseURL   string  `yaml:"serper_base_url"`
	HistoryLimit    int     `yaml:"history_limit"`
	RequestTimeout  string  `yaml:"request_timeout"`
	LogFile         string  `yaml:"log_file"`
	LogLevel        string  `yaml:"log_level"`
}

// Load builds configuration from defaults, an optional YAML file (path in
// LUMEXA_CONFIG), and environment variables, in that precedence order.
func Load() (Config, error) {
	cfg := Config{
		Port:            "3000",
		LLMProvider:     ProviderCerebras,
		CerebrasBaseURL: "https://api.cerebras.ai/v1",
		GeminiBaseURL:   "https://generativelanguage.googleapis.com/v1beta",
		OllamaHost:      "http://localhost:11434",
		Temperature:     0.6,
		MaxTokens:       900,
		SerperBaseURL:   "https://google.serper.dev",
		HistoryLimit:    100,
		RequestTimeout:  60 * time.Second,
		LogFile:         "/tmp/lumexa.log",
		LogLevel:        slog.LevelInfo,
	}

	if path := os.Getenv("LUMEXA_CONFIG"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.Port, fc.Port)
	if fc.Provider != "" {
		cfg.LLMProvider = Provider(strings.ToLower(fc.Provider))
	}
	setString(&cfg.LLMModel, fc.Model)
	setString(&cfg.CerebrasAPIKey, fc.CerebrasAPIKey)
	setString(&cfg.CerebrasBaseURL, fc.CerebrasBaseURL)
	setString(&cfg.GeminiAPIKey, fc.GeminiAPIKey)
	setString(&cfg.GeminiBaseURL, fc.GeminiBaseURL)
	setString(&cfg.OllamaHost, fc.OllamaHost)
	if fc.Temperature != 0 {
		cfg.Temperature = fc.Temperature
	}
	if fc.MaxTokens != 0 {
		cfg.MaxTokens = fc.MaxTokens
	}
	setString(&cfg.SerperAPIKey, fc.SerperAPIKey)
	setString(&cfg.SerperBaseURL, fc.SerperBaseURL)
	if fc.HistoryLimit != 0 {
		cfg.HistoryLimit = fc.HistoryLimit
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	setString(&cfg.LogFile, fc.LogFile)
	if fc.LogLevel != "" {
		cfg.LogLevel = parseLogLevel(fc.LogLevel)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, os.Getenv("PORT"))
	if v := os.Getenv("LUMEXA_PROVIDER"); v != "" {
		cfg.LLMProvider = Provider(strings.ToLower(v))
	}
	setString(&cfg.LLMModel, os.Getenv("LUMEXA_MODEL"))
	setString(&cfg.CerebrasAPIKey, os.Getenv("CEREBRAS_API_KEY"))
	setString(&cfg.CerebrasBaseURL, os.Getenv("CEREBRAS_BASE_URL"))
	setString(&cfg.GeminiAPIKey, os.Getenv("GEMINI_API_KEY"))
	setString(&cfg.GeminiBaseURL, os.Getenv("GEMINI_BASE_URL"))
	setString(&cfg.OllamaHost, os.Getenv("OLLAMA_HOST"))
	if v := os.Getenv("LUMEXA_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("LUMEXA_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	setString(&cfg.SerperAPIKey, os.Getenv("SERPER_API_KEY"))
	setString(&cfg.SerperBaseURL, os.Getenv("SERPER_BASE_URL"))
	if v := os.Getenv("LUMEXA_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("LUMEXA_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	setString(&cfg.LogFile, os.Getenv("LUMEXA_LOG_FILE"))
	if v := os.Getenv("LUMEXA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
