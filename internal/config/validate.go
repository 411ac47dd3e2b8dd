package config

import (
	"fmt"
	"strings"

	"github.com/fjglira/go-restdocs/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if cfg.Output.Pattern == "" {
		errs = append(errs, "output.pattern must not be empty")
	} else if !balancedBraces(cfg.Output.Pattern) {
		errs = append(errs, fmt.Sprintf("output.pattern has unbalanced placeholder braces (got %q)", cfg.Output.Pattern))
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}

// balancedBraces reports whether every { is closed before the next one opens.
func balancedBraces(s string) bool {
	open := false
	for _, c := range s {
		switch c {
		case '{':
			if open {
				return false
			}
			open = true
		case '}':
			if !open {
				return false
			}
			open = false
		}
	}
	return !open
}
