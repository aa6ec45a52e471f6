package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks that a Config can actually be served.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Host == "" {
		errs = append(errs, "host must not be empty")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port %d is out of range", cfg.Port))
	}
	if _, ok := validLogLevels[cfg.LogLevel]; !ok {
		errs = append(errs, fmt.Sprintf("unknown log level %q", cfg.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
