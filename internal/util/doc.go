// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the textkit command.
//
// # Key Functions
//
//   - ReplaceFile: atomic writes for --out and config init, keeping the
//     permissions of a file that is overwritten
//   - TruncateRunes: UTF-8 safe truncation for log lines
//
// The formatting helpers themselves live in pkg/strutil and pkg/nullutil.
package util
