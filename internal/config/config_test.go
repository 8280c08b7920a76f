// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/textkit/pkg/nullutil"
)

var envKeys = []string{
	"TEXTKIT_WIDTH",
	"TEXTKIT_PAD_CHAR",
	"TEXTKIT_PAD_LENGTH",
	"TEXTKIT_GLUE",
	"TEXTKIT_JSON",
	"TEXTKIT_COLOR",
}

// isolate points HOME at a temp dir and clears TEXTKIT_* for the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestConfig_Default(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.NotEmpty(t, cfg.Version)
	assert.Equal(t, 80, cfg.Wrap.Width)
	assert.Equal(t, " ", cfg.Pad.Char)
	assert.Equal(t, 80, cfg.Pad.Length)
	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, " ", *cfg.Join.Glue)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	assert.Equal(t, Default().Version, cfg.Version)
	assert.Equal(t, " ", cfg.Pad.Char)
	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, " ", *cfg.Join.Glue)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, 0, cfg.Wrap.Width, "zero width means terminal width and must survive SetDefaults")
}

func TestConfig_SetDefaultsKeepsEmptyGlue(t *testing.T) {
	cfg := &Config{Join: JoinConfig{Glue: nullutil.Of("")}}
	cfg.SetDefaults()

	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, "", *cfg.Join.Glue)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		field   string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "terminal width", mutate: func(c *Config) { c.Wrap.Width = 0 }},
		{name: "negative width", mutate: func(c *Config) { c.Wrap.Width = -1 }, wantErr: true, field: "wrap.width"},
		{name: "multibyte pad char", mutate: func(c *Config) { c.Pad.Char = "→" }},
		{name: "two pad chars", mutate: func(c *Config) { c.Pad.Char = "--" }, wantErr: true, field: "pad.char"},
		{name: "empty pad char", mutate: func(c *Config) { c.Pad.Char = "" }, wantErr: true, field: "pad.char"},
		{name: "negative pad length", mutate: func(c *Config) { c.Pad.Length = -4 }, wantErr: true, field: "pad.length"},
		{name: "color never", mutate: func(c *Config) { c.Output.Color = "never" }},
		{name: "bad color", mutate: func(c *Config) { c.Output.Color = "rainbow" }, wantErr: true, field: "output.color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs), "expected ValidateErrors, got %T", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Wrap.Width = -1
	cfg.Pad.Char = "ab"
	cfg.Output.Color = "sometimes"

	var verrs ValidateErrors
	require.True(t, errors.As(cfg.Validate(), &verrs))
	assert.Len(t, verrs, 3)
	assert.Contains(t, verrs.Error(), "wrap.width")
	assert.Contains(t, verrs.Error(), "pad.char")
	assert.Contains(t, verrs.Error(), "output.color")
}

func TestConfig_PadRune(t *testing.T) {
	cfg := Default()
	cfg.Pad.Char = "-"
	r, err := cfg.PadRune()
	require.NoError(t, err)
	assert.Equal(t, '-', r)

	cfg.Pad.Char = "日"
	r, err = cfg.PadRune()
	require.NoError(t, err)
	assert.Equal(t, '日', r)

	cfg.Pad.Char = "xy"
	_, err = cfg.PadRune()
	assert.Error(t, err)
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Wrap, cfg.Wrap)
	assert.Equal(t, Default().Pad, cfg.Pad)
}

func TestLoad_PrefersTOML(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".textkit", "config.toml"), "[wrap]\nwidth = 20\n")
	writeFile(t, filepath.Join(home, ".textkit", "config.json"), `{"wrap": {"width": 30}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Wrap.Width)
}

func TestLoad_FallsBackToJSON(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".textkit", "config.json"), `{"wrap": {"width": 30}, "join": {"glue": ", "}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Wrap.Width)
	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, ", ", *cfg.Join.Glue)
}

func TestLoadFromPath_TOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "textkit.toml")
	writeFile(t, path, `
version = "1.0.0"

[wrap]
width = 0

[pad]
char = "-"
length = 40

[join]
glue = ""

[output]
json = true
color = "NEVER"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Wrap.Width)
	assert.Equal(t, "-", cfg.Pad.Char)
	assert.Equal(t, 40, cfg.Pad.Length)
	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, "", *cfg.Join.Glue)
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, ColorNever, cfg.Output.Color)
}

func TestLoadFromPath_MissingKeysKeepDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.toml")
	writeFile(t, path, "[pad]\nlength = 12\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Pad.Length)
	assert.Equal(t, " ", cfg.Pad.Char)
	assert.Equal(t, 80, cfg.Wrap.Width)
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "typo.toml")
	writeFile(t, path, "[wrap]\nwidht = 10\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrap.widht")
}

func TestLoadFromPath_UnknownJSONKey(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "typo.json")
	writeFile(t, path, `{"wrap": {"widht": 10}}`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "[pad]\nchar = \"--\"\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	isolate(t)
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTKIT_WIDTH", "33")
	t.Setenv("TEXTKIT_PAD_CHAR", "*")
	t.Setenv("TEXTKIT_PAD_LENGTH", "9")
	t.Setenv("TEXTKIT_GLUE", "")
	t.Setenv("TEXTKIT_JSON", "true")
	t.Setenv("TEXTKIT_COLOR", "always")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.Wrap.Width)
	assert.Equal(t, "*", cfg.Pad.Char)
	assert.Equal(t, 9, cfg.Pad.Length)
	require.NotNil(t, cfg.Join.Glue)
	assert.Equal(t, "", *cfg.Join.Glue, "a set but empty TEXTKIT_GLUE means empty glue")
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, ColorAlways, cfg.Output.Color)
}

func TestApplyEnvOverrides_OverridesFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".textkit", "config.toml"), "[wrap]\nwidth = 20\n")
	t.Setenv("TEXTKIT_WIDTH", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Wrap.Width)
}

func TestApplyEnvOverrides_InvalidInteger(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTKIT_WIDTH", "wide")

	_, err := Load()
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "TEXTKIT_WIDTH", verr.Field)
}

// =============================================================================
// SAVING
// =============================================================================

func TestConfig_EncodeTOML(t *testing.T) {
	var cfg interface{} = Default()
	_, isMarshaler := cfg.(toml.Marshaler)
	require.False(t, isMarshaler, "Config must not implement toml.Marshaler")

	data, err := Default().EncodeTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[wrap]")
	assert.Contains(t, string(data), "width = 80")

	decoded := &Config{}
	_, err = toml.Decode(string(data), decoded)
	require.NoError(t, err)
	assert.Equal(t, Default(), decoded)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "saved", "config.toml")

	cfg := Default()
	cfg.Wrap.Width = 42
	cfg.Pad.Char = "."
	cfg.Join.Glue = nullutil.Of(" | ")
	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Wrap.Width)
	assert.Equal(t, ".", loaded.Pad.Char)
	require.NotNil(t, loaded.Join.Glue)
	assert.Equal(t, " | ", *loaded.Join.Glue)
}
