package config

// Default values for configuration fields.
const (
	DefaultCapacity        = 1024 * 1024 // 1MB initial kernel capacity
	DefaultSecurityReserve = 4096
	DefaultPrivacyLevel    = "high"
	DefaultPowerMode       = "balanced"
	DefaultGenerator       = GeneratorPlaceholder
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMetricsNS       = "aura"
)

// Identity generators.
const (
	GeneratorPlaceholder = "placeholder"
	GeneratorUUID        = "uuid"
)

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults. It is meant for
// configs built in code; Parse seeds defaults before decoding instead, so
// values written in a file are never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Memory.Capacity == 0 {
		cfg.Memory.Capacity = DefaultCapacity
	}
	if cfg.Memory.SecurityReserve == 0 {
		cfg.Memory.SecurityReserve = DefaultSecurityReserve
	}
	if cfg.Privacy.Level == "" {
		cfg.Privacy.Level = DefaultPrivacyLevel
	}
	if cfg.Power.Mode == "" {
		cfg.Power.Mode = DefaultPowerMode
	}
	if cfg.Identity.Generator == "" {
		cfg.Identity.Generator = DefaultGenerator
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNS
	}
}
