package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var ErrInvalidProvider = errors.New("invalid llm provider")

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Secrets SecretsConfig
	Log     LogConfig
}

type ServerConfig struct {
	Addr        string
	MetricsAddr string
}

type LLMConfig struct {
	Provider string
	OpenAI   OpenAIConfig
}

type OpenAIConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

type SecretsConfig struct {
	File string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:        getEnvOrDefault("HTTP_ADDR", ":8080"),
			MetricsAddr: getEnvOrDefault("METRICS_ADDR", ":9090"),
		},
		LLM: LLMConfig{
			Provider: getEnvOrDefault("LLM_PROVIDER", "openai"),
			OpenAI: OpenAIConfig{
				Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
				BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
				Timeout: time.Duration(getEnvIntOrDefault("OPENAI_TIMEOUT_SEC", 60)) * time.Second,
			},
		},
		Secrets: SecretsConfig{
			File: getEnvOrDefault("SECRETS_FILE", "secrets.yaml"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "mock":
		return nil
	}
	return ErrInvalidProvider
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
