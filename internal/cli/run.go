// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// run.go - Command dispatch, input and output for textkit.

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jeranaias/textkit/internal/config"
	"github.com/jeranaias/textkit/internal/util"
)

// maxLoggedInput limits how much input text ends up in verbose logs.
const maxLoggedInput = 60

// Runner executes textkit commands against a set of streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinIsTTY reports whether Stdin is an interactive terminal.
	StdinIsTTY func() bool
	// StdoutIsTTY reports whether Stdout is a terminal; help is styled only then.
	StdoutIsTTY func() bool
	// TerminalWidth is used when the configured wrap width is 0.
	TerminalWidth func() int

	logger *log.Logger
}

// NewRunner returns a Runner bound to the process streams and terminal.
func NewRunner() *Runner {
	return &Runner{
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		StdinIsTTY:    IsTTY,
		StdoutIsTTY:   IsStdoutTTY,
		TerminalWidth: GetTerminalWidth,
	}
}

// result is what a command produces. Text is printed in text mode and is
// nil when there is nothing to print; Data is the JSON payload.
type result struct {
	Text *string
	Data interface{}
}

func textResult(text string, data interface{}) result {
	return result{Text: &text, Data: data}
}

// Execute runs the command line argv (without the program name) and returns
// the process exit code.
func (r *Runner) Execute(argv []string) int {
	r.logger = log.New(io.Discard, "", 0)

	cmd, args, err := Parse(argv)
	if args.Verbose {
		r.logger = log.New(r.Stderr, "textkit: ", log.LstdFlags)
	}
	if err != nil {
		return r.fail(cmd, args, err)
	}

	cfg, err := r.loadConfig(cmd, args)
	if err != nil {
		return r.fail(cmd, args, err)
	}
	if cfg.Output.JSON {
		args.JSON = true
	}
	ApplyColorMode(cfg.Output.Color)

	r.logger.Printf("COMMAND_START | command=%s args=%d", cmd, len(args.Text))

	res, err := r.dispatch(cmd, args, cfg)
	if err != nil {
		return r.fail(cmd, args, err)
	}

	if err := r.writeResult(cmd, args, res); err != nil {
		return r.fail(cmd, args, err)
	}

	r.logger.Printf("COMMAND_COMPLETE | command=%s", cmd)
	return ExitSuccess
}

// loadConfig loads --config or the default locations. Commands that must
// work without a usable config fall back to defaults.
func (r *Runner) loadConfig(cmd Command, args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}

	if err != nil {
		tolerant := cmd == CmdHelp || cmd == CmdVersion || (cmd == CmdConfig && args.Subcommand == "init")
		if !tolerant {
			return nil, &ConfigError{Path: args.ConfigPath, Err: err}
		}
		r.logger.Printf("CONFIG_FALLBACK | error=%v", err)
		return config.Default(), nil
	}

	r.logger.Printf("CONFIG_LOADED | path=%q width=%d pad_length=%d color=%s",
		args.ConfigPath, cfg.Wrap.Width, cfg.Pad.Length, cfg.Output.Color)
	return cfg, nil
}

func (r *Runner) dispatch(cmd Command, args Args, cfg *config.Config) (result, error) {
	switch cmd {
	case CmdWrap:
		return r.handleWrap(args, cfg)
	case CmdLines:
		return r.handleLines(args, cfg)
	case CmdJoin:
		return r.handleJoin(args, cfg)
	case CmdPadRight:
		return r.handlePad(args, cfg, false)
	case CmdPadLeft:
		return r.handlePad(args, cfg, true)
	case CmdCoalesce:
		return r.handleCoalesce(args)
	case CmdConfig:
		return r.handleConfig(args, cfg)
	case CmdVersion:
		return handleVersion(), nil
	default:
		return r.handleHelp(args), nil
	}
}

// handleHelp returns the usage text. The title is styled only when it is
// printed to a terminal.
func (r *Runner) handleHelp(args Args) result {
	text := strings.TrimSuffix(usageText, "\n")
	if args.OutPath == "" && r.StdoutIsTTY != nil && r.StdoutIsTTY() {
		title, rest, _ := strings.Cut(text, "\n")
		text = TitleStyle.Render(title) + "\n" + rest
	}
	return textResult(text, map[string]string{"usage": usageText})
}

// fail reports err and returns its exit code. JSON errors go to stdout so
// scripts read a single stream.
func (r *Runner) fail(cmd Command, args Args, err error) int {
	r.logger.Printf("COMMAND_FAILED | command=%s error=%v", cmd, err)
	if args.JSON {
		DisplayError(r.Stdout, cmd.String(), err, true)
	} else {
		DisplayError(r.Stderr, cmd.String(), err, false)
	}
	return GetExitCode(err)
}

// writeResult prints res to stdout, or to --out when given.
func (r *Runner) writeResult(cmd Command, args Args, res result) error {
	var out []byte
	if args.JSON {
		data, err := NewJSONResponse(cmd.String(), res.Data).Marshal()
		if err != nil {
			return NewCommandError(cmd.String(), "output", "failed to encode JSON", err)
		}
		out = data
	} else if res.Text != nil {
		out = []byte(*res.Text + "\n")
	}

	if args.OutPath == "" {
		if _, err := r.Stdout.Write(out); err != nil {
			return NewCommandError(cmd.String(), "output", "failed to write stdout", err)
		}
		return nil
	}

	if err := util.ReplaceFile(args.OutPath, out, 0644); err != nil {
		return NewCommandError(cmd.String(), "output", "failed to write "+args.OutPath, err)
	}
	r.logger.Printf("OUTPUT_WRITTEN | path=%s bytes=%d", args.OutPath, len(out))
	if !args.Quiet {
		fmt.Fprintf(r.Stderr, "%s wrote %d bytes to %s\n", SuccessStyle.Render("[OK]"), len(out), args.OutPath)
	}
	return nil
}

// =============================================================================
// INPUT
// =============================================================================

// readInput returns the positional text joined by blanks, or stdin when no
// text was given and stdin is not a terminal.
func (r *Runner) readInput(command string, args Args) (string, error) {
	if len(args.Text) > 0 {
		text := strings.Join(args.Text, " ")
		r.logger.Printf("INPUT | source=args text=%q", util.TruncateRunes(text, maxLoggedInput))
		return text, nil
	}

	text, ok, err := r.readStdin()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", NewValidationErrorWithExample("text", "", "no input text given",
			fmt.Sprintf("textkit %s \"some text\"  or  echo \"some text\" | textkit %s", command, command))
	}
	r.logger.Printf("INPUT | source=stdin text=%q", util.TruncateRunes(text, maxLoggedInput))
	return text, nil
}

// readLines returns the positional arguments, or the lines of stdin when no
// arguments were given. It returns nil when there is no input at all.
func (r *Runner) readLines(args Args) ([]string, error) {
	if len(args.Text) > 0 {
		return args.Text, nil
	}

	text, ok, err := r.readStdin()
	if err != nil || !ok {
		return nil, err
	}
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), nil
}

// readStdin reads all of stdin without its final line break. ok is false
// when stdin is a terminal.
func (r *Runner) readStdin() (string, bool, error) {
	if r.Stdin == nil || (r.StdinIsTTY != nil && r.StdinIsTTY()) {
		return "", false, nil
	}
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, true, nil
}

// terminalWidth returns the detected terminal width.
func (r *Runner) terminalWidth() int {
	if r.TerminalWidth == nil {
		return DefaultTerminalWidth
	}
	return r.TerminalWidth()
}
