// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"strings"

	"github.com/jeranaias/textkit/pkg/nullutil"
)

const (
	blank     = ' '
	lineBreak = '\n'
)

// Wrap breaks s into lines of at most width runes by replacing blanks with
// newlines. Each line ends at the last blank that keeps it within width.
//
// Words are never split: a word longer than width is left intact on a line
// of its own, so that line exceeds width. A nil s yields nil, and a width of
// zero or less returns s unchanged.
func Wrap(s *string, width int) *string {
	if s == nil || width <= 0 {
		return s
	}
	return nullutil.Of(wrap(*s, width))
}

// WrapToLines wraps s like Wrap and returns the resulting lines.
//
// A nil s yields nil. A width of zero or less yields a single line holding
// s unchanged.
func WrapToLines(s *string, width int) []string {
	if s == nil {
		return nil
	}
	if width <= 0 {
		return []string{*s}
	}
	return strings.Split(wrap(*s, width), string(lineBreak))
}

func wrap(s string, width int) string {
	runes := []rune(s)
	start := 0

	for len(runes)-start > width {
		// The blank right after a full line sits at start+width.
		brk := lastBlank(runes, start, start+width)
		if brk < 0 {
			// Overlong word; end the line where the word ends.
			brk = nextBlank(runes, start+width+1)
			if brk < 0 {
				break
			}
		}
		runes[brk] = lineBreak
		start = brk + 1
	}

	return string(runes)
}

// lastBlank returns the index of the last blank in runes[from:to+1], or -1.
func lastBlank(runes []rune, from, to int) int {
	for i := to; i >= from; i-- {
		if runes[i] == blank {
			return i
		}
	}
	return -1
}

// nextBlank returns the index of the first blank at or after from, or -1.
func nextBlank(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == blank {
			return i
		}
	}
	return -1
}
