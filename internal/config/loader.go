package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if JAMSCHED_CONFIG is set
//  3. env (prefix JAMSCHED_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("JAMSCHED_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: JAMSCHED_START_TIME, JAMSCHED_BUFFER_MINUTES, ...
	// Keys map to the flat koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("JAMSCHED_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "jamsched_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields a run cannot proceed without. A zero slot
// duration is deliberately not rejected here: the allocator treats it as an
// empty bucket configuration and warns instead.
func (c *Config) Validate() error {
	if _, err := time.Parse(TimeLayout, c.StartTime); err != nil {
		return fmt.Errorf("%w: start_time %q: %w", ErrInvalidConfig, c.StartTime, err)
	}
	if c.TargetEndTime != "" {
		if _, err := time.Parse(TimeLayout, c.TargetEndTime); err != nil {
			return fmt.Errorf("%w: target_end_time %q: %w", ErrInvalidConfig, c.TargetEndTime, err)
		}
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer_minutes must not be negative", ErrInvalidConfig)
	}
	if c.CategoryDelimiter == "" {
		return fmt.Errorf("%w: category_delimiter must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Start returns the parsed judging start time. Validate must have passed.
func (c *Config) Start() time.Time {
	t, _ := time.Parse(TimeLayout, c.StartTime)
	return t
}

// TargetEnd returns the parsed target end time, or the zero time when no
// target is configured.
func (c *Config) TargetEnd() time.Time {
	if c.TargetEndTime == "" {
		return time.Time{}
	}
	t, _ := time.Parse(TimeLayout, c.TargetEndTime)
	return t
}

// Buffer returns the per-team cross-bucket buffer as a duration.
func (c *Config) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

// SlotDuration returns the per-slot judging duration as a duration.
func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// CategoryStartOffset returns the delay of category judging after start.
func (c *Config) CategoryStartOffset() time.Duration {
	return time.Duration(c.CategoryStartOffsetMinutes) * time.Minute
}
