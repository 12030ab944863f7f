package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional top-level configuration parsed from
// binres.yaml. Every field has a default that reproduces the stock tool
// behavior; the file only exists to widen the formatting and filtering knobs.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Output contains formatting settings for the generated sources.
	Output OutputConfig `yaml:"output"`
	// Filter contains the hidden-file filter settings.
	Filter FilterConfig `yaml:"filter"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stdout.
	Path string `yaml:"path"`
}

// OutputConfig controls the shape of the emitted source files.
type OutputConfig struct {
	// ValuesPerLine is the soft-wrap width of byte-array literals.
	ValuesPerLine int `yaml:"values_per_line"`
	// GuardPrefix is the prefix of the header include-guard macro.
	GuardPrefix string `yaml:"guard_prefix"`
}

// FilterConfig extends the hidden-file predicate applied while collecting
// source files. Names starting with '.' and zero-length files are always
// hidden regardless of these settings.
type FilterConfig struct {
	// HiddenSuffixes lists case-insensitive name suffixes to exclude.
	HiddenSuffixes []string `yaml:"hidden_suffixes"`
	// HiddenNames lists exact names to exclude.
	HiddenNames []string `yaml:"hidden_names"`
	// WatchDebounceMs is the debounce window for --watch rebuilds.
	WatchDebounceMs int `yaml:"watch_debounce_ms"`
}

// Load reads and parses a configuration file.
//
// Parameters:
//   - path: The file to read.
//
// Returns:
//   - *Config: The parsed configuration.
//   - error: An error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
// The defaults match the historical BinaryBuilder output exactly: 40 values
// per line, a BINARY_ guard prefix, and the .scc/.svn source-control filter.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Output.ValuesPerLine == 0 {
		config.Output.ValuesPerLine = 40
	}
	if config.Output.GuardPrefix == "" {
		config.Output.GuardPrefix = "BINARY_"
	}
	if config.Filter.HiddenSuffixes == nil {
		config.Filter.HiddenSuffixes = []string{".scc"}
	}
	if config.Filter.HiddenNames == nil {
		config.Filter.HiddenNames = []string{".svn"}
	}
	if config.Filter.WatchDebounceMs == 0 {
		config.Filter.WatchDebounceMs = 200
	}
}

// Validate checks the configuration for errors, such as an unknown log level
// or a non-positive wrap width.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	if config.Output.ValuesPerLine < 1 {
		return fmt.Errorf("output.values_per_line must be positive, got %d", config.Output.ValuesPerLine)
	}

	if strings.TrimSpace(config.Output.GuardPrefix) == "" {
		return fmt.Errorf("output.guard_prefix must not be blank")
	}
	for _, r := range config.Output.GuardPrefix {
		if r != '_' && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("output.guard_prefix must be an uppercase identifier, got %q", config.Output.GuardPrefix)
		}
	}

	if config.Filter.WatchDebounceMs < 0 {
		return fmt.Errorf("filter.watch_debounce_ms must not be negative, got %d", config.Filter.WatchDebounceMs)
	}

	return nil
}
