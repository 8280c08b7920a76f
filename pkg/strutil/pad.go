// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/textkit/pkg/nullutil"
)

// PadRight pads s on the right with blanks up to length runes.
func PadRight(s *string, length int) *string {
	return PadRightWith(s, blank, length)
}

// PadRightWith appends copies of c to s until it is length runes long.
//
// s is returned unchanged when it is nil, already at least length runes
// long, or when length is zero or less.
func PadRightWith(s *string, c rune, length int) *string {
	n := padCount(s, length)
	if n == 0 {
		return s
	}
	return nullutil.Of(*s + strings.Repeat(string(c), n))
}

// PadLeft pads s on the left with blanks up to length runes.
func PadLeft(s *string, length int) *string {
	return PadLeftWith(s, blank, length)
}

// PadLeftWith prepends copies of c to s until it is length runes long.
//
// s is returned unchanged when it is nil, already at least length runes
// long, or when length is zero or less.
func PadLeftWith(s *string, c rune, length int) *string {
	n := padCount(s, length)
	if n == 0 {
		return s
	}
	return nullutil.Of(strings.Repeat(string(c), n) + *s)
}

// padCount returns how many pad characters s is missing to reach length.
func padCount(s *string, length int) int {
	if s == nil || length <= 0 {
		return 0
	}
	if n := length - utf8.RuneCountInString(*s); n > 0 {
		return n
	}
	return 0
}
