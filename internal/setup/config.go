package setup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the defaults shared by both tools. Values come from the
// optional defaults file, then from built-ins; command-line flags override
// everything here.
type Config struct {
	Region    string `yaml:"region"`
	ModelID   string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	LogLevel  string `yaml:"log_level"`
}

const (
	defaultRegion    = "us-west-2"
	defaultModelID   = "anthropic.claude-3-sonnet-20240229-v1:0"
	defaultMaxTokens = 50000
)

// LoadConfig reads the defaults file, path taken from BEDROCK_CLI_CONFIG and
// falling back to configs/defaults.yaml. A missing file is not an error.
func LoadConfig() (*Config, error) {
	path := os.Getenv("BEDROCK_CLI_CONFIG")
	if path == "" {
		path = "configs/defaults.yaml"
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Built-in defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.ModelID == "" {
		cfg.ModelID = defaultModelID
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
