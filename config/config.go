package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the replay driver settings.
type Config struct {
	ServiceName string `yaml:"service_name"`
	InputFile   string `yaml:"input_file"`
	Depth       int    `yaml:"depth"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		ServiceName: "limitbook",
		Depth:       10,
		LogLevel:    "info",
	}
}

// Load reads the configuration from a YAML file. An empty path falls back
// to the CONFIG_FILE environment variable. Environment references inside
// the file are expanded before parsing.
func Load(filePath string) (*Config, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	sugar := zap.S().With("filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, fmt.Errorf("reading config: %w", err)
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := Default()
	if err := yaml.Unmarshal(configBytes, cfg); err != nil {
		sugar.Error("Failed to parse config file")
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	zap.S().Debugf("config: %+v", cfg)
	return cfg, nil
}
