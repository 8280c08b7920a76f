// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and execution for textkit.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - Runner: Executes a command against stdin, stdout and stderr
//   - JSONResponse: Envelope for --json output
//
// # Usage
//
//	os.Exit(cli.NewRunner().Execute(os.Args[1:]))
//
// # Commands Overview
//
// Text commands:
//   - wrap: Wrap text at blanks so lines fit a width
//   - lines: Wrap text and print one line per line
//   - join: Join pieces with a glue string
//   - pad-right, pad-left: Pad text up to a length
//   - coalesce: Print the first non-empty argument
//
// Other commands:
//   - config: Show, locate or initialize the configuration file
//   - version: Show version information
//   - help: Show usage
//
// # Exit Codes
//
//   - 0: success
//   - 1: general error
//   - 2: usage error (bad flag, missing input)
//   - 3: configuration error
package cli
