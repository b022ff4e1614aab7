package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want 15", cfg.Search.TimeoutSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.Gemini.APIKey)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  api_key: file-key
  model: gemini-2.0-flash-exp
search:
  timeout_seconds: 5
  user_agent: test-agent
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.APIKey != "file-key" {
		t.Errorf("api key = %q, want file-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash-exp" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Search.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Search.TimeoutSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gemini:\n  api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.Gemini.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
