package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies defaults and validates it.
// Environment variables are not consulted; use LoadWithEnvOverrides for that.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Keys absent
// from data keep their default; keys present keep their value, so an explicit
// zero capacity is reported by Validate rather than replaced.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads path (or the defaults when path is empty) and
// applies AURA_* environment overrides before validating.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("after environment overrides: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies AURA_SECTION_FIELD variables to cfg. Malformed
// numeric or boolean values are reported rather than ignored.
func ApplyEnvOverrides(cfg *Config) error {
	if err := envUint("AURA_MEMORY_CAPACITY", &cfg.Memory.Capacity); err != nil {
		return err
	}
	if err := envUint("AURA_MEMORY_SECURITY_RESERVE", &cfg.Memory.SecurityReserve); err != nil {
		return err
	}
	envString("AURA_PRIVACY_LEVEL", &cfg.Privacy.Level)
	envString("AURA_POWER_MODE", &cfg.Power.Mode)
	envString("AURA_IDENTITY_GENERATOR", &cfg.Identity.Generator)
	envString("AURA_LOGGING_LEVEL", &cfg.Logging.Level)
	envString("AURA_LOGGING_FORMAT", &cfg.Logging.Format)
	envString("AURA_LOGGING_DIR", &cfg.Logging.Dir)
	envString("AURA_METRICS_NAMESPACE", &cfg.Metrics.Namespace)

	if val := os.Getenv("AURA_METRICS_ENABLED"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("AURA_METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = b
	}
	return nil
}

func envString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func envUint(key string, dst *uint64) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
