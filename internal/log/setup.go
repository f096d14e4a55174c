package log

import (
	"fmt"

	"github.com/footprint-tools/argot/internal/domain"
)

// Setup opens the log file at path according to the enable_log and
// log_level config keys. A non-empty levelOverride beats log_level.
//
// With logging disabled it returns a NopLogger and touches nothing on disk.
// On success the logger is also installed as the global default.
func Setup(path string, cfg domain.ConfigProvider, levelOverride string) (domain.Logger, error) {
	enabled, level := "true", "warn"
	if cfg != nil {
		if v, ok := cfg.Get("enable_log"); ok {
			enabled = v
		}
		if v, ok := cfg.Get("log_level"); ok && v != "" {
			level = v
		}
	}
	if levelOverride != "" {
		level = levelOverride
	}

	if enabled != "true" {
		return NopLogger{}, nil
	}
	if path == "" {
		return NopLogger{}, fmt.Errorf("setup logger: empty path")
	}

	l, err := New(path, ParseLevel(level))
	if err != nil {
		return NopLogger{}, fmt.Errorf("setup logger: %w", err)
	}
	SetDefault(l)
	return l, nil
}
