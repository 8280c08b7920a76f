// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for textkit.
package cli

import (
	"strconv"
	"strings"

	"github.com/jeranaias/textkit/pkg/nullutil"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdWrap
	CmdLines
	CmdJoin
	CmdPadRight
	CmdPadLeft
	CmdCoalesce
	CmdConfig
	CmdVersion
)

var commandNames = map[Command]string{
	CmdHelp:     "help",
	CmdWrap:     "wrap",
	CmdLines:    "lines",
	CmdJoin:     "join",
	CmdPadRight: "pad-right",
	CmdPadLeft:  "pad-left",
	CmdCoalesce: "coalesce",
	CmdConfig:   "config",
	CmdVersion:  "version",
}

// commandAliases maps every accepted spelling to its command.
var commandAliases = map[string]Command{
	"help":      CmdHelp,
	"wrap":      CmdWrap,
	"lines":     CmdLines,
	"join":      CmdJoin,
	"implode":   CmdJoin,
	"pad-right": CmdPadRight,
	"rpad":      CmdPadRight,
	"pad-left":  CmdPadLeft,
	"lpad":      CmdPadLeft,
	"coalesce":  CmdCoalesce,
	"config":    CmdConfig,
	"version":   CmdVersion,
}

// String returns the canonical command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool
	Verbose    bool
	Quiet      bool
	ConfigPath string
	OutPath    string

	// Command flags; nil when not given so config values apply
	Width  *int
	Length *int
	Char   *string
	Glue   *string
	Number bool // lines: prefix line numbers
	Force  bool // config init: overwrite an existing file

	// Subcommand is the config action (show, init)
	Subcommand string

	// Text holds the positional arguments after the command
	Text []string
}

// flagSpec declares every textkit flag.
var flagSpec = FlagSpec{
	Bool:  []string{"json", "verbose", "v", "quiet", "q", "help", "h", "number", "n", "force"},
	Value: []string{"width", "w", "length", "l", "char", "c", "glue", "g", "config", "out", "o"},
}

const usageText = `textkit - text formatting helpers for the command line

Usage:
  textkit <command> [flags] [text...]

When no text is given and stdin is not a terminal, input is read from stdin.

Commands:
  wrap                 Wrap text at blanks so lines fit a width
    --width, -w N        Column to wrap at; 0 leaves the text unchanged
                         (default: wrap.width, where 0 means terminal width)
  lines                Wrap text and print one line per line
    --width, -w N        Column to wrap at
    --number, -n         Prefix each line with its line number
  join, implode        Join the arguments (or stdin lines) with a glue string
    --glue, -g STR       Separator (default: join.glue); may start with "-",
                         as in --glue -- or --glue=--
  pad-right, rpad      Pad text on the right up to a length
  pad-left, lpad       Pad text on the left up to a length
    --length, -l N       Target length in characters (default: pad.length)
    --char, -c C         Pad character (default: pad.char)
  coalesce             Print the first non-empty argument
  config [show|path|init]
                       Show, locate or write the configuration file
    --force              Overwrite an existing file on init
  version              Show version information
  help                 Show this help

Global flags:
  --config PATH        Load configuration from PATH
  --json               Print results as JSON
  --out, -o FILE       Write the result to FILE instead of stdout
  --verbose, -v        Log progress to stderr
  --quiet, -q          Suppress status messages

Examples:
  textkit wrap --width 20 "I am a string that is 82 characters long and I should be wrapped at 20 characters."
  textkit pad-left --char 0 --length 6 42
  printf 'a\nb\nc\n' | textkit join --glue ", "
  textkit coalesce "" "$MAYBE_EMPTY" fallback
`

// Parse parses the raw command-line arguments (without the program name).
func Parse(argv []string) (Command, Args, error) {
	p := NewArgParser(argv, flagSpec)

	args := Args{
		JSON:       p.BoolFlag("json"),
		Verbose:    p.BoolFlag("verbose", "v"),
		Quiet:      p.BoolFlag("quiet", "q"),
		ConfigPath: p.Flag("config"),
		Number:     p.BoolFlag("number", "n"),
		Force:      p.BoolFlag("force"),
		Text:       p.PositionalFrom(1),
	}
	if out, ok := p.FirstValue("out", "o"); ok {
		args.OutPath = out
	}

	if p.BoolFlag("help", "h") || p.Command() == "" {
		return CmdHelp, args, nil
	}

	name := strings.ToLower(p.Command())
	cmd, ok := commandAliases[name]
	if !ok {
		return CmdHelp, args, NewValidationErrorWithExample("command", p.Command(), "unknown command", "textkit help")
	}

	var err error
	if args.Width, err = intFlag(p, "width", "w"); err != nil {
		return cmd, args, err
	}
	if args.Length, err = intFlag(p, "length", "l"); err != nil {
		return cmd, args, err
	}
	if args.Char, err = stringFlag(p, "char", "c"); err != nil {
		return cmd, args, err
	}
	if args.Glue, err = stringFlag(p, "glue", "g"); err != nil {
		return cmd, args, err
	}

	if cmd == CmdConfig && len(args.Text) > 0 {
		args.Subcommand = strings.ToLower(args.Text[0])
		args.Text = args.Text[1:]
	}

	return cmd, args, nil
}

// intFlag returns the integer value of the first of names given, or nil.
func intFlag(p *ArgParser, names ...string) (*int, error) {
	if _, err := stringFlag(p, names...); err != nil {
		return nil, err
	}
	value, ok := p.FirstValue(names...)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, NewValidationError(names[0], value, "must be an integer")
	}
	return nullutil.Of(n), nil
}

// stringFlag returns the value of the first of names given, or nil. A flag
// given without a value is an error.
func stringFlag(p *ArgParser, names ...string) (*string, error) {
	if value, ok := p.FirstValue(names...); ok {
		return nullutil.Of(value), nil
	}
	for _, name := range names {
		if p.HasFlag(name) {
			return nil, NewValidationError(names[0], "", "flag needs a value")
		}
	}
	return nil, nil
}
