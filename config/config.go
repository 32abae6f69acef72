// Package config loads CLI settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/byteobj"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "~/.byteobj.toml"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

// Config holds settings for the byteobj CLI.
type Config struct {
	// LogLevel is a zerolog level name, e.g. "debug".
	LogLevel string `toml:"log_level"`

	// MaxBytesSize limits constructed bytes objects. Zero means unlimited.
	MaxBytesSize int64 `toml:"max_bytes_size"`

	// Color enables colored output on terminals.
	Color bool `toml:"color"`

	// Output is one of "text", "json" or "cbor".
	Output string `toml:"output"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Color:    true,
		Output:   OutputText,
	}
}

// Load reads the config file at path, with a leading ~ expanded to the
// home directory. Settings absent from the file keep their defaults. A
// missing file is not an error when path is DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML settings over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every setting holds an accepted value.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	if c.MaxBytesSize < 0 {
		return fmt.Errorf("config: max_bytes_size must not be negative")
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputCBOR:
	default:
		return fmt.Errorf("config: invalid output %q", c.Output)
	}
	return nil
}

// Level returns the parsed log level, or warn if it is invalid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// Options returns runtime options for these settings, logging to logger.
func (c Config) Options(logger zerolog.Logger) []byteobj.Option {
	return []byteobj.Option{
		byteobj.WithLogger(logger.Level(c.Level())),
		byteobj.WithMaxBytesSize(c.MaxBytesSize),
	}
}
