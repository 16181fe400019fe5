// Package config loads process-wide configuration once at startup.
package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the assistant backend. It is built once
// in main and passed into constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Oracle OracleConfig
	Gmail  GmailConfig
}

// OracleConfig points at the OpenAI-compatible chat-completions endpoint used
// for classification, extraction and generation.
type OracleConfig struct {
	URL             string
	APIKey          string
	ReasoningModel  string
	GenerationModel string
}

// GmailConfig carries the fallback access token used by surfaces that cannot
// forward a per-request credential (the MCP tools). HTTP requests carry their
// own bearer token and never touch this.
type GmailConfig struct {
	AccessToken string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Oracle: OracleConfig{
			URL:             envStr("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
			APIKey:          os.Getenv("GROQ_API_KEY"),
			ReasoningModel:  envStr("REASONING_MODEL", "llama-3.1-8b-instant"),
			GenerationModel: envStr("GENERATION_MODEL", "llama-3.1-8b-instant"),
		},
		Gmail: GmailConfig{
			AccessToken: os.Getenv("GMAIL_ACCESS_TOKEN"),
		},
	}

	if cfg.Oracle.APIKey == "" {
		return nil, fmt.Errorf("env variable GROQ_API_KEY must be set")
	}

	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
