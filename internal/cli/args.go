// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for textkit commands.

package cli

import (
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// FlagSpec declares how flags consume arguments. Bool flags never take a
// value. Value flags always take the next argument, even one that starts
// with "-" (join --glue -- a b). Undeclared flags take the next argument
// only when it does not look like a flag.
type FlagSpec struct {
	Bool  []string
	Value []string
}

// ArgParser splits raw arguments into flags and positional arguments.
// It handles these formats:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (never consume the next argument)
//   - Positional arguments: anything else, including "-" and negative numbers
//   - "--" ends flag parsing; everything after it is positional
type ArgParser struct {
	command    string            // First positional arg (e.g., "wrap", "join")
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--json)
	positional []string          // All positional arguments including the command
}

// NewArgParser creates a parser for raw using spec.
//
// Example:
//
//	args := NewArgParser([]string{"wrap", "--width", "20", "--json", "some", "text"},
//		FlagSpec{Bool: []string{"json"}, Value: []string{"width"}})
//	args.Command()          // "wrap"
//	args.Flag("width")      // "20"
//	args.BoolFlag("json")   // true
//	args.PositionalFrom(1)  // []string{"some", "text"}
func NewArgParser(raw []string, spec FlagSpec) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
	}

	isBool := nameSet(spec.Bool)
	isValue := nameSet(spec.Value)

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if arg == "--" {
			parser.positional = append(parser.positional, raw[i+1:]...)
			break
		}

		if !looksLikeFlag(arg) {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		// --flag=value
		if name, value, ok := strings.Cut(strings.TrimLeft(arg, "-"), "="); ok {
			if isBool[name] {
				parser.boolFlags[name] = value == "true" || value == "1"
			} else {
				parser.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i+1 < len(raw) && (isValue[name] || (!isBool[name] && !looksLikeFlag(raw[i+1]))) {
			parser.flags[name] = raw[i+1]
			i += 2
			continue
		}

		// A bool flag, or a value flag with nothing after it.
		parser.boolFlags[name] = true
		i++
	}

	if len(parser.positional) > 0 {
		parser.command = parser.positional[0]
	}

	return parser
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// looksLikeFlag reports whether arg is a flag rather than a value.
// A lone "-" and negative numbers are values.
func looksLikeFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return false
	}
	return true
}

// Command returns the first positional argument, or "" if there is none.
func (p *ArgParser) Command() string {
	return p.command
}

// Flag returns the value of a string flag, or "" if it was not given.
func (p *ArgParser) Flag(name string) string {
	value, _ := p.Value(name)
	return value
}

// Value returns the value of a string flag and whether it was given with a
// value. An explicitly empty value (--glue "") reports ok.
func (p *ArgParser) Value(name string) (string, bool) {
	value, ok := p.flags[strings.TrimLeft(name, "-")]
	return value, ok
}

// FirstValue returns the value of the first of names that was given.
// Use it for flags with a long and a short spelling.
func (p *ArgParser) FirstValue(names ...string) (string, bool) {
	for _, name := range names {
		if value, ok := p.Value(name); ok {
			return value, true
		}
	}
	return "", false
}

// BoolFlag returns true if any of names was given as a boolean flag.
func (p *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		if p.boolFlags[strings.TrimLeft(name, "-")] {
			return true
		}
	}
	return false
}

// HasFlag returns true if the flag exists either as string or bool flag.
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}

// PositionalFrom returns all positional arguments starting from index.
//
// Example: "join --glue , a b c"
//
//	args.PositionalFrom(1)  // []string{"a", "b", "c"}
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return []string{}
	}
	return p.positional[index:]
}
