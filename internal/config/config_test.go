package config

import (
	"strings"
	"testing"
)

func setLLMEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvURL, "https://api.example.com/v1")
	t.Setenv(EnvModel, "gpt-test")
}

func TestLLMFromEnv(t *testing.T) {
	setLLMEnv(t)

	cfg, err := LLMFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "key" || cfg.BaseURL != "https://api.example.com/v1" || cfg.Model != "gpt-test" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLLMFromEnvNamesMissingVariable(t *testing.T) {
	setLLMEnv(t)
	t.Setenv(EnvModel, "")

	_, err := LLMFromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), EnvModel) {
		t.Fatalf("error does not name the variable: %v", err)
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv(EnvFile, "/tmp/my-todos.md")

	path, err := FilePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/tmp/my-todos.md" {
		t.Fatalf("got %q", path)
	}
}

func TestFilePathDefault(t *testing.T) {
	t.Setenv(EnvFile, "")

	path, err := FilePath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "ambrogio/todos.md") {
		t.Fatalf("got %q", path)
	}
}
