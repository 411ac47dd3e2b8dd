package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/go-restdocs/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type OutputConfig struct {
	Directory         string `yaml:"directory"`
	Pattern           string `yaml:"pattern"`
	CreateDirectories bool   `yaml:"create_directories"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", "", 0, "failed to read config file "+path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", "", 0, "failed to parse config file "+path, err)
	}

	return cfg, nil
}

// LoadOrDefault is like Load but returns DefaultConfig when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}
