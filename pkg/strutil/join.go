// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"strings"

	"github.com/jeranaias/textkit/pkg/nullutil"
)

// NullToEmpty returns the string s points to, or "" when s is nil.
func NullToEmpty(s *string) string {
	return nullutil.ValueOr(s, "")
}

// Implode joins pieces with glue placed between consecutive elements.
//
// A nil glue or a nil pieces slice cannot be joined and yields nil. An empty,
// non-nil pieces slice yields "".
func Implode(glue *string, pieces []string) *string {
	if glue == nil || pieces == nil {
		return nil
	}
	return nullutil.Of(strings.Join(pieces, *glue))
}
