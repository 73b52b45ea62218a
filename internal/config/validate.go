package config

import (
	"fmt"
	"strings"

	"github.com/joshuapare/aurakernel/internal/logger"
	"github.com/joshuapare/aurakernel/power"
	"github.com/joshuapare/aurakernel/privacy"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the field (e.g., "memory.capacity").
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate checks cfg and returns a ValidationError listing every problem,
// or nil when the configuration is usable.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Memory.Capacity == 0 {
		errs = append(errs, FieldError{"memory.capacity", "must be greater than zero"})
	}
	if cfg.Memory.SecurityReserve == 0 {
		errs = append(errs, FieldError{"memory.security_reserve", "must be greater than zero"})
	} else if cfg.Memory.SecurityReserve > cfg.Memory.Capacity {
		errs = append(errs, FieldError{
			"memory.security_reserve",
			fmt.Sprintf("%d exceeds capacity %d", cfg.Memory.SecurityReserve, cfg.Memory.Capacity),
		})
	}
	if _, err := privacy.ParseLevel(cfg.Privacy.Level); err != nil {
		errs = append(errs, FieldError{"privacy.level", fmt.Sprintf("unknown level %q", cfg.Privacy.Level)})
	}
	if _, err := power.ParseMode(cfg.Power.Mode); err != nil {
		errs = append(errs, FieldError{"power.mode", fmt.Sprintf("unknown mode %q", cfg.Power.Mode)})
	}
	switch cfg.Identity.Generator {
	case GeneratorPlaceholder, GeneratorUUID:
	default:
		errs = append(errs, FieldError{"identity.generator", fmt.Sprintf("unknown generator %q", cfg.Identity.Generator)})
	}
	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, FieldError{"logging.level", fmt.Sprintf("unknown level %q", cfg.Logging.Level)})
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, FieldError{"logging.format", fmt.Sprintf("unknown format %q", cfg.Logging.Format)})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// PrivacyLevel returns the parsed privacy level. Call after Validate.
func (c *Config) PrivacyLevel() privacy.Level {
	l, _ := privacy.ParseLevel(c.Privacy.Level)
	return l
}

// PowerMode returns the parsed power mode. Call after Validate.
func (c *Config) PowerMode() power.Mode {
	m, _ := power.ParseMode(c.Power.Mode)
	return m
}

// LoggerOptions converts the logging section to logger options.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Dir:    c.Logging.Dir,
	}
}
