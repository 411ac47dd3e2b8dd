package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Directory:         "build/generated-snippets",
			Pattern:           "{method-name}/{step}",
			CreateDirectories: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
