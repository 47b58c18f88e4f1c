// Package config loads engine defaults from a TOML file and supports
// live reload through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration loading.
var (
	// ErrInvalidLineEnding indicates an unrecognized line_ending value.
	ErrInvalidLineEnding = errors.New("invalid line ending")
)

// Duration wraps time.Duration so TOML strings like "300ms" decode.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds the tunable engine defaults.
type Config struct {
	// MaxUndoEntries bounds the undo stack.
	MaxUndoEntries int `toml:"max_undo_entries"`

	// GroupWindow is the idle timeout for undo grouping.
	GroupWindow Duration `toml:"group_window"`

	// TabWidth is the buffer tab width.
	TabWidth int `toml:"tab_width"`

	// LineEnding forces a line ending style: "lf", "crlf", "cr", or
	// empty to detect from content.
	LineEnding string `toml:"line_ending"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxUndoEntries: 1000,
		GroupWindow:    Duration(300 * time.Millisecond),
		TabWidth:       4,
	}
}

// Load reads configuration from a TOML file, filling unset fields with
// defaults. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LineEnding {
	case "", "lf", "crlf", "cr":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLineEnding, c.LineEnding)
	}
}
