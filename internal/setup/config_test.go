package setup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesBuiltins(t *testing.T) {
	t.Setenv("BEDROCK_CLI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Region != "us-west-2" {
		t.Errorf("Expected region us-west-2, got %q", cfg.Region)
	}
	if cfg.ModelID != "anthropic.claude-3-sonnet-20240229-v1:0" {
		t.Errorf("Unexpected model id %q", cfg.ModelID)
	}
	if cfg.MaxTokens != 50000 {
		t.Errorf("Expected max_tokens 50000, got %d", cfg.MaxTokens)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_FileOverridesBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	content := "region: eu-central-1\nmax_tokens: 1024\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("BEDROCK_CLI_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Region != "eu-central-1" {
		t.Errorf("Expected region eu-central-1, got %q", cfg.Region)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("Expected max_tokens 1024, got %d", cfg.MaxTokens)
	}
	// Unset keys keep built-in defaults.
	if cfg.ModelID != "anthropic.claude-3-sonnet-20240229-v1:0" {
		t.Errorf("Unexpected model id %q", cfg.ModelID)
	}
}

func TestLoadConfig_LogLevelFromEnv(t *testing.T) {
	t.Setenv("BEDROCK_CLI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte("region: [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("BEDROCK_CLI_CONFIG", path)

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for malformed config")
	}
}
