// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/textkit/internal/util"
	"github.com/jeranaias/textkit/pkg/nullutil"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete textkit configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	Wrap   WrapConfig   `toml:"wrap" json:"wrap"`
	Pad    PadConfig    `toml:"pad" json:"pad"`
	Join   JoinConfig   `toml:"join" json:"join"`
	Output OutputConfig `toml:"output" json:"output"`
}

// WrapConfig contains defaults for the wrap and lines commands.
type WrapConfig struct {
	// Width is the wrap column. 0 means the current terminal width.
	Width int `toml:"width" json:"width"`
}

// PadConfig contains defaults for the pad-left and pad-right commands.
type PadConfig struct {
	// Char is the pad character and must be exactly one character long.
	Char string `toml:"char" json:"char"`
	// Length is the target length in characters.
	Length int `toml:"length" json:"length"`
}

// JoinConfig contains defaults for the join command.
type JoinConfig struct {
	// Glue is inserted between joined pieces. nil means "not configured",
	// which is different from an explicitly empty glue.
	Glue *string `toml:"glue" json:"glue"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// JSON prints results as JSON responses.
	JSON bool `toml:"json" json:"json"`
	// Color is one of "auto", "always", "never".
	Color string `toml:"color" json:"color"`
}

// Color modes accepted by OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Wrap: WrapConfig{
			Width: 80,
		},
		Pad: PadConfig{
			Char:   " ",
			Length: 80,
		},
		Join: JoinConfig{
			Glue: nullutil.Of(" "),
		},
		Output: OutputConfig{
			JSON:  false,
			Color: ColorAuto,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the textkit configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".textkit"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default locations.
// Tries ~/.textkit/config.toml, then ~/.textkit/config.json, and falls back
// to defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	for _, candidate := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := candidate()
		if err != nil {
			// No home directory; defaults and environment still apply.
			break
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Files ending in .json are decoded as JSON, anything else as
// TOML. Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finish applies environment overrides, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to path as TOML, replacing any existing file atomically.
// An existing file keeps its permissions.
func Save(cfg *Config, path string) error {
	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}
	if err := util.ReplaceFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg as a TOML document. Config must not implement
// toml.Marshaler, or Encode recurses into it.
func (c *Config) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Wrap.Width < 0 {
		errs = append(errs, ValidationError{
			Field:   "wrap.width",
			Message: fmt.Sprintf("must be 0 (terminal width) or positive, got %d", c.Wrap.Width),
		})
	}

	if n := utf8.RuneCountInString(c.Pad.Char); n != 1 {
		errs = append(errs, ValidationError{
			Field:   "pad.char",
			Message: fmt.Sprintf("must be exactly one character, got %q", c.Pad.Char),
		})
	}

	if c.Pad.Length < 0 {
		errs = append(errs, ValidationError{
			Field:   "pad.length",
			Message: fmt.Sprintf("must not be negative, got %d", c.Pad.Length),
		})
	}

	switch strings.ToLower(c.Output.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.Output.Color),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills missing values with defaults. Wrap width is left alone
// because 0 is meaningful there.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Pad.Char == "" {
		c.Pad.Char = defaults.Pad.Char
	}
	c.Join.Glue = nullutil.Coalesce(c.Join.Glue, defaults.Join.Glue)
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
	c.Output.Color = strings.ToLower(c.Output.Color)
}

// PadRune returns the configured pad character.
func (c *Config) PadRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Pad.Char)
	if r == utf8.RuneError || size != len(c.Pad.Char) {
		return 0, ValidationError{Field: "pad.char", Message: fmt.Sprintf("must be exactly one character, got %q", c.Pad.Char)}
	}
	return r, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - TEXTKIT_WIDTH: overrides wrap.width
//   - TEXTKIT_PAD_CHAR: overrides pad.char
//   - TEXTKIT_PAD_LENGTH: overrides pad.length
//   - TEXTKIT_GLUE: overrides join.glue (set but empty means empty glue)
//   - TEXTKIT_JSON: "1" or "true" enables JSON output
//   - TEXTKIT_COLOR: overrides output.color
func (c *Config) ApplyEnvOverrides() error {
	var errs []error

	if width := os.Getenv("TEXTKIT_WIDTH"); width != "" {
		n, err := strconv.Atoi(width)
		if err != nil {
			errs = append(errs, ValidationError{Field: "TEXTKIT_WIDTH", Message: fmt.Sprintf("not an integer: %q", width)})
		} else {
			c.Wrap.Width = n
		}
	}

	if char := os.Getenv("TEXTKIT_PAD_CHAR"); char != "" {
		c.Pad.Char = char
	}

	if length := os.Getenv("TEXTKIT_PAD_LENGTH"); length != "" {
		n, err := strconv.Atoi(length)
		if err != nil {
			errs = append(errs, ValidationError{Field: "TEXTKIT_PAD_LENGTH", Message: fmt.Sprintf("not an integer: %q", length)})
		} else {
			c.Pad.Length = n
		}
	}

	if glue, ok := os.LookupEnv("TEXTKIT_GLUE"); ok {
		c.Join.Glue = nullutil.Of(glue)
	}

	if jsonMode := os.Getenv("TEXTKIT_JSON"); jsonMode != "" {
		c.Output.JSON = jsonMode == "1" || strings.ToLower(jsonMode) == "true"
	}

	if color := os.Getenv("TEXTKIT_COLOR"); color != "" {
		c.Output.Color = color
	}

	return errors.Join(errs...)
}
