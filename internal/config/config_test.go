package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 40, cfg.Output.ValuesPerLine)
	assert.Equal(t, "BINARY_", cfg.Output.GuardPrefix)
	assert.Equal(t, []string{".scc"}, cfg.Filter.HiddenSuffixes)
	assert.Equal(t, []string{".svn"}, cfg.Filter.HiddenNames)
	assert.Equal(t, 200, cfg.Filter.WatchDebounceMs)

	require.NoError(t, Validate(cfg))
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Output.ValuesPerLine = 12
	cfg.Filter.HiddenSuffixes = []string{}
	ApplyDefaults(cfg)

	assert.Equal(t, 12, cfg.Output.ValuesPerLine)
	// An explicit empty list disables the suffix filter; only nil means
	// "use the default".
	assert.Empty(t, cfg.Filter.HiddenSuffixes)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binres.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
output:
  values_per_line: 16
filter:
  hidden_names: [".svn", ".hg"]
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	ApplyDefaults(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 16, cfg.Output.ValuesPerLine)
	assert.Equal(t, []string{".svn", ".hg"}, cfg.Filter.HiddenNames)
	assert.Equal(t, "BINARY_", cfg.Output.GuardPrefix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binres.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid logging level",
		},
		{
			name:    "zero wrap width",
			mutate:  func(c *Config) { c.Output.ValuesPerLine = -1 },
			wantErr: "values_per_line must be positive",
		},
		{
			name:    "lowercase guard prefix",
			mutate:  func(c *Config) { c.Output.GuardPrefix = "bin_" },
			wantErr: "guard_prefix must be an uppercase identifier",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Filter.WatchDebounceMs = -5 },
			wantErr: "watch_debounce_ms must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
