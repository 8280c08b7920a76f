// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/textkit/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"command error", NewCommandError("config", "init", "exists", nil), ExitGeneralError},
		{"validation error", NewValidationError("width", "x", "must be an integer"), ExitUsageError},
		{"wrapped validation error", fmt.Errorf("parse: %w", NewValidationError("char", "", "flag needs a value")), ExitUsageError},
		{"config error", &ConfigError{Path: "a.toml", Err: errors.New("bad")}, ExitConfigError},
		{"config validation", fmt.Errorf("invalid config: %w", config.ValidateErrors{{Field: "pad.char", Message: "bad"}}), ExitConfigError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetExitCode(tc.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "config init failed: exists", NewCommandError("config", "init", "exists", nil).Error())

	inner := errors.New("disk full")
	cmdErr := NewCommandError("wrap", "output", "failed to write", inner)
	assert.Equal(t, "wrap output failed: failed to write: disk full", cmdErr.Error())
	assert.ErrorIs(t, cmdErr, inner)

	verr := NewValidationErrorWithExample("char", "ab", "must be exactly one character", "--char '-'")
	assert.Equal(t, "invalid char: must be exactly one character (got: ab)\nExample: --char '-'", verr.Error())

	cfgErr := &ConfigError{Path: "tk.toml", Err: inner}
	assert.Equal(t, "config tk.toml: disk full", cfgErr.Error())
	assert.Equal(t, "config: disk full", (&ConfigError{Err: inner}).Error())
	assert.ErrorIs(t, cfgErr, inner)
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

func TestDisplayError_Text(t *testing.T) {
	ApplyColorMode(config.ColorNever)
	var buf bytes.Buffer

	DisplayError(&buf, "wrap", NewValidationError("width", "x", "must be an integer"), false)
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), " invalid width: must be an integer (got: x)\n")
}

func TestDisplayError_DimsExample(t *testing.T) {
	var buf bytes.Buffer

	ApplyColorMode(config.ColorAlways)
	DisplayError(&buf, "pad-left", NewValidationErrorWithExample("char", "ab", "must be exactly one character", "--char '-'"), false)
	dimmed := DimStyle.Render("Example: --char '-'")
	ApplyColorMode(config.ColorNever)

	out := buf.String()
	assert.Contains(t, out, "invalid char: must be exactly one character (got: ab)\n")
	assert.Contains(t, out, dimmed)
	assert.Equal(t, 1, strings.Count(out, "Example:"))
}

func TestDisplayError_JSON(t *testing.T) {
	var buf bytes.Buffer

	DisplayError(&buf, "pad-left", NewValidationError("char", "ab", "must be exactly one character"), true)

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "exactly one character")
	assert.Equal(t, "validation_error", resp.ErrorType)
	assert.Equal(t, "pad-left", resp.Command)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestDisplayError_Nil(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, "wrap", nil, false)
	assert.Empty(t, buf.String())
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "validation_error", errorType(NewValidationError("a", "", "b")))
	assert.Equal(t, "config_error", errorType(&ConfigError{Err: errors.New("x")}))
	assert.Equal(t, "command_error", errorType(NewCommandError("a", "b", "c", nil)))
	assert.Equal(t, "generic_error", errorType(errors.New("x")))
}

// =============================================================================
// JSON OUTPUT
// =============================================================================

func TestJSONResponse_Success(t *testing.T) {
	resp := NewJSONResponse("wrap", WrapResult{Width: 5, Text: "a\nb"})

	data, err := resp.Marshal()
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("\n")))
	assert.Contains(t, string(data), `"error": null`)
	assert.NotContains(t, string(data), "error_type")

	var buf bytes.Buffer
	require.NoError(t, resp.Write(&buf))
	assert.JSONEq(t, string(data), buf.String())
}

// =============================================================================
// TERMINAL
// =============================================================================

func TestColorsEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	assert.True(t, ColorsEnabled(config.ColorAlways))
	assert.True(t, ColorsEnabled("ALWAYS"))
	assert.False(t, ColorsEnabled(config.ColorNever))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorsEnabled(config.ColorAuto))
	assert.True(t, ColorsEnabled(config.ColorAlways), "explicit mode wins over NO_COLOR")

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ColorsEnabled(config.ColorAuto))
}

func TestColorsEnabled_AutoFollowsStderr(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	assert.Equal(t, IsStderrTTY(), ColorsEnabled(config.ColorAuto))
}

func TestGetColorProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, GetColorProfile(config.ColorNever))
	assert.NotEqual(t, termenv.Ascii, GetColorProfile(config.ColorAlways))
}

func TestGetTerminalWidth(t *testing.T) {
	assert.GreaterOrEqual(t, GetTerminalWidth(), MinTerminalWidth)
}
