// Package config resolves run settings from defaults, an optional YAML
// config file, ANAGRAMS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"anagrams/internal/finder"
	"anagrams/internal/logging"
	"anagrams/internal/output"
	"anagrams/internal/wordlist"
)

// EnvPrefix prefixes every environment override, e.g. ANAGRAMS_NPROCS.
const EnvPrefix = "ANAGRAMS"

// Config keys
const (
	KeyMethod          = "method"
	KeyNProcs          = "nprocs"
	KeyChunkSize       = "chunk_size"
	KeyOutput          = "output"
	KeyNormalize       = "normalize"
	KeyQuiet           = "quiet"
	KeyNoMatchExitCode = "no_match_exit_code"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
)

// Config represents the complete run configuration
type Config struct {
	// Method is word_centric or word_list_centric
	Method string `mapstructure:"method"`
	// NProcs is the worker count (0 = all CPUs, 1 = sequential)
	NProcs int `mapstructure:"nprocs"`
	// ChunkSize is the number of work items per worker task (0 = per-method default)
	ChunkSize int `mapstructure:"chunk_size"`
	// Output is the output format: text | json | jsonl | yaml
	Output string `mapstructure:"output"`
	// Normalize applies Unicode normalization to the word and word list: none | nfc | nfkc
	Normalize string `mapstructure:"normalize"`
	// Quiet only logs errors
	Quiet bool `mapstructure:"quiet"`
	// NoMatchExitCode is the exit code when no anagram is found
	NoMatchExitCode int `mapstructure:"no_match_exit_code"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls diagnostics on stderr
type LoggingConfig struct {
	// Level is DEBUG, INFO, WARN or ERROR
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:          string(finder.DefaultMethod),
		NProcs:          0,
		ChunkSize:       0,
		Output:          output.FormatText,
		Normalize:       wordlist.NormNone,
		NoMatchExitCode: 0,
		Logging: LoggingConfig{
			Level:  logging.LevelWarn,
			Format: logging.FormatText,
		},
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyMethod, d.Method)
	v.SetDefault(KeyNProcs, d.NProcs)
	v.SetDefault(KeyChunkSize, d.ChunkSize)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyNormalize, d.Normalize)
	v.SetDefault(KeyQuiet, d.Quiet)
	v.SetDefault(KeyNoMatchExitCode, d.NoMatchExitCode)
	v.SetDefault(KeyLogLevel, d.Logging.Level)
	v.SetDefault(KeyLogFormat, d.Logging.Format)
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	// ANAGRAMS_LOGGING_LEVEL for logging.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "anagrams")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "anagrams")
}

// ReadFile loads path into v. With an empty path the default locations are
// searched and a missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName("anagrams")
	v.SetConfigType("yaml")
	if dir := ConfigDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if lvl, ok := logging.ParseLevel(c.Logging.Level); ok {
		c.Logging.Level = lvl
	}
	if c.Quiet {
		c.Logging.Level = logging.LevelError
	}
	return c, c.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := finder.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.NProcs < 0 {
		return errors.New("--nprocs must be ≥ 0")
	}
	if c.ChunkSize < 0 {
		return errors.New("--chunk-size must be ≥ 0")
	}
	if !slices.Contains(output.Formats(), c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(output.Formats(), " | "))
	}
	if _, err := wordlist.Normalizer(c.Normalize); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("invalid log level %q (want %s)", c.Logging.Level, strings.Join(logging.ValidLevels(), " | "))
	}
	switch c.Logging.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want text | json)", c.Logging.Format)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
