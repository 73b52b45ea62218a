// Package config loads the kernel configuration from YAML with defaults and
// environment overrides.
//
// A minimal file:
//
//	memory:
//	  capacity: 1048576
//	  security_reserve: 4096
//	privacy:
//	  level: high
//	power:
//	  mode: balanced
//
// Environment variables named AURA_SECTION_FIELD (for example
// AURA_MEMORY_CAPACITY) take precedence over the file.
package config

// Config is the top-level kernel configuration.
type Config struct {
	Memory   MemoryConfig   `yaml:"memory"`
	Privacy  PrivacyConfig  `yaml:"privacy"`
	Power    PowerConfig    `yaml:"power"`
	Identity IdentityConfig `yaml:"identity"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// MemoryConfig sizes the region allocator.
type MemoryConfig struct {
	// Capacity is the total bytes the allocator may issue.
	Capacity uint64 `yaml:"capacity"`

	// SecurityReserve is the allocation made at boot for the security module.
	SecurityReserve uint64 `yaml:"security_reserve"`
}

// PrivacyConfig selects the shield level ("standard", "high", "paranoid").
type PrivacyConfig struct {
	Level string `yaml:"level"`
}

// PowerConfig selects the power mode ("performance", "balanced", "efficient").
type PowerConfig struct {
	Mode string `yaml:"mode"`
}

// IdentityConfig selects how the session identity is generated.
type IdentityConfig struct {
	// Generator is "placeholder" (stable ID) or "uuid".
	Generator string `yaml:"generator"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}
