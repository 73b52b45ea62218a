package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/aurakernel/power"
	"github.com/joshuapare/aurakernel/privacy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aura.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint64(1024*1024), cfg.Memory.Capacity)
	assert.Equal(t, uint64(4096), cfg.Memory.SecurityReserve)
	assert.Equal(t, privacy.High, cfg.PrivacyLevel())
	assert.Equal(t, power.Balanced, cfg.PowerMode())
	assert.Equal(t, GeneratorPlaceholder, cfg.Identity.Generator)
	assert.False(t, cfg.Metrics.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
memory:
  capacity: 65536
  security_reserve: 1024
privacy:
  level: paranoid
power:
  mode: efficient
identity:
  generator: uuid
logging:
  level: debug
  format: json
metrics:
  enabled: true
  namespace: test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(65536), cfg.Memory.Capacity)
	assert.Equal(t, uint64(1024), cfg.Memory.SecurityReserve)
	assert.Equal(t, privacy.Paranoid, cfg.PrivacyLevel())
	assert.Equal(t, power.Efficient, cfg.PowerMode())
	assert.Equal(t, GeneratorUUID, cfg.Identity.Generator)
	assert.Equal(t, "debug", cfg.LoggerOptions().Level)
	assert.Equal(t, "json", cfg.LoggerOptions().Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "test", cfg.Metrics.Namespace)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "power:\n  mode: performance\n"))
	require.NoError(t, err)

	assert.Equal(t, power.Performance, cfg.PowerMode())
	assert.Equal(t, uint64(DefaultCapacity), cfg.Memory.Capacity)
	assert.Equal(t, DefaultPrivacyLevel, cfg.Privacy.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "memory: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration")
}

func TestValidate_CollectsErrors(t *testing.T) {
	_, err := Parse([]byte(`
memory:
  capacity: 1024
  security_reserve: 2048
privacy:
  level: extreme
power:
  mode: turbo
identity:
  generator: random
logging:
  format: xml
`))
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"memory.security_reserve",
		"privacy.level",
		"power.mode",
		"identity.generator",
		"logging.format",
	}, fields)
	assert.Contains(t, err.Error(), "with 5 errors")
}

func TestValidate_ZeroCapacity(t *testing.T) {
	cfg := Default()
	cfg.Memory.Capacity = 0
	cfg.Memory.SecurityReserve = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory.capacity")
}

func TestLoad_ExplicitZeroIsKept(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"capacity", "memory:\n  capacity: 0\n  security_reserve: 0\n", "memory.capacity"},
		{"capacity only", "memory:\n  capacity: 0\n", "memory.capacity"},
		{"security reserve", "memory:\n  security_reserve: 0\n", "memory.security_reserve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestLoadWithEnvOverrides_ExplicitZeroCapacity(t *testing.T) {
	t.Setenv("AURA_MEMORY_CAPACITY", "0")
	_, err := LoadWithEnvOverrides("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory.capacity")
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("AURA_MEMORY_CAPACITY", "0x2000")
	t.Setenv("AURA_PRIVACY_LEVEL", "standard")
	t.Setenv("AURA_POWER_MODE", "Performance")
	t.Setenv("AURA_METRICS_ENABLED", "true")

	cfg, err := LoadWithEnvOverrides(writeConfig(t, "memory:\n  capacity: 4096\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(0x2000), cfg.Memory.Capacity)
	assert.Equal(t, privacy.Standard, cfg.PrivacyLevel())
	assert.Equal(t, power.Performance, cfg.PowerMode())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithEnvOverrides_NoFile(t *testing.T) {
	t.Setenv("AURA_IDENTITY_GENERATOR", "uuid")

	cfg, err := LoadWithEnvOverrides("")
	require.NoError(t, err)
	assert.Equal(t, GeneratorUUID, cfg.Identity.Generator)
}

func TestLoadWithEnvOverrides_Malformed(t *testing.T) {
	t.Setenv("AURA_MEMORY_CAPACITY", "lots")
	_, err := LoadWithEnvOverrides("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AURA_MEMORY_CAPACITY")
}

func TestLoadWithEnvOverrides_InvalidAfterOverride(t *testing.T) {
	t.Setenv("AURA_MEMORY_SECURITY_RESERVE", "99999999")
	_, err := LoadWithEnvOverrides("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after environment overrides")
}
