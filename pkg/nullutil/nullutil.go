// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nullutil provides helpers for optional values.
//
// An optional value is a pointer: nil means the value is absent. The helpers
// never dereference a nil pointer and never panic.
package nullutil

// Coalesce returns the first non-nil candidate, scanning left to right.
// It returns nil when every candidate is nil or when none are given.
func Coalesce[T any](tries ...*T) *T {
	for _, t := range tries {
		if t != nil {
			return t
		}
	}
	return nil
}

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// ValueOr returns the value v points to, or fallback when v is nil.
func ValueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
