// Package config reads configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/sadopc/ambrogio/internal/store"
)

const (
	EnvFile   = "AMBROGIO_FILE"
	EnvAPIKey = "AMBROGIO_LLM_API_KEY"
	EnvURL    = "AMBROGIO_LLM_URL"
	EnvModel  = "AMBROGIO_LLM_MODEL"
)

// LLM holds the settings for the chat completion endpoint. All three are
// required; the chat REPL is the only consumer.
type LLM struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LLMFromEnv builds the LLM configuration, naming the missing variable on
// failure.
func LLMFromEnv() (*LLM, error) {
	apiKey, err := requireEnv(EnvAPIKey)
	if err != nil {
		return nil, err
	}
	baseURL, err := requireEnv(EnvURL)
	if err != nil {
		return nil, err
	}
	model, err := requireEnv(EnvModel)
	if err != nil {
		return nil, err
	}
	return &LLM{APIKey: apiKey, BaseURL: baseURL, Model: model}, nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is required", name)
	}
	return value, nil
}

// FilePath resolves the organiser file: AMBROGIO_FILE when set, otherwise
// the per-user default under the config directory.
func FilePath() (string, error) {
	if path := os.Getenv(EnvFile); path != "" {
		return path, nil
	}
	return store.DefaultFilePath()
}
