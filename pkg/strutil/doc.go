// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package strutil provides helpers for common string formatting operations.
//
// Optional strings are *string values where nil means absent. Every helper
// propagates absence: a nil input string yields a nil result instead of an
// error. Widths and lengths count runes, and the only word boundary is the
// ASCII blank.
//
// # Key Functions
//
//   - Wrap, WrapToLines: break text at blanks so lines fit a column width
//   - PadRight, PadLeft: pad with blanks up to a length
//   - PadRightWith, PadLeftWith: pad with a chosen character
//   - Implode: join pieces with a glue string
//   - NullToEmpty: turn an absent string into ""
//
// # Usage
//
//	text := "I am a string that is 82 characters long and I should be wrapped at 20 characters."
//	lines := strutil.WrapToLines(&text, 20)
//
//	label := "Name:"
//	fmt.Println(strutil.NullToEmpty(strutil.PadRight(&label, 12)))
package strutil
