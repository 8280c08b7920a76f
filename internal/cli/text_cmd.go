// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// text_cmd.go - Text commands for textkit.
//
// Commands:
//   wrap        Wrap text at blanks so every line fits a width
//   lines       Wrap text and print the lines one by one
//   join        Join pieces with a glue string (alias: implode)
//   pad-right   Pad text on the right up to a length (alias: rpad)
//   pad-left    Pad text on the left up to a length (alias: lpad)
//   coalesce    Print the first non-empty argument
//
// Examples:
//   textkit wrap --width 20 "some long text"
//   textkit lines --number --width 30 < notes.txt
//   textkit join --glue , a b c
//   textkit pad-left --char 0 --length 6 42
//   textkit coalesce "" "" fallback

package cli

import (
	"strconv"
	"unicode/utf8"

	"github.com/jeranaias/textkit/internal/config"
	"github.com/jeranaias/textkit/pkg/nullutil"
	"github.com/jeranaias/textkit/pkg/strutil"
)

// WrapResult is the JSON payload of the wrap command.
type WrapResult struct {
	Width int    `json:"width"`
	Text  string `json:"text"`
}

// LinesResult is the JSON payload of the lines command.
type LinesResult struct {
	Width int      `json:"width"`
	Count int      `json:"count"`
	Lines []string `json:"lines"`
}

// JoinResult is the JSON payload of the join command.
type JoinResult struct {
	Glue   string   `json:"glue"`
	Pieces []string `json:"pieces"`
	Text   string   `json:"text"`
}

// PadResult is the JSON payload of the pad-left and pad-right commands.
type PadResult struct {
	Side   string `json:"side"`
	Char   string `json:"char"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// CoalesceResult is the JSON payload of the coalesce command. Value is null
// when every candidate was empty.
type CoalesceResult struct {
	Value *string `json:"value"`
	Index int     `json:"index"`
}

// wrapWidth resolves the wrap column. An explicit --width is used as given;
// a configured width of 0 means the terminal width.
func (r *Runner) wrapWidth(args Args, cfg *config.Config) int {
	if args.Width != nil {
		return *args.Width
	}
	if cfg.Wrap.Width == 0 {
		return r.terminalWidth()
	}
	return cfg.Wrap.Width
}

func (r *Runner) handleWrap(args Args, cfg *config.Config) (result, error) {
	text, err := r.readInput(CmdWrap.String(), args)
	if err != nil {
		return result{}, err
	}

	width := r.wrapWidth(args, cfg)
	wrapped := strutil.NullToEmpty(strutil.Wrap(&text, width))
	r.logger.Printf("WRAP | width=%d in=%d out=%d", width, utf8.RuneCountInString(text), utf8.RuneCountInString(wrapped))

	return textResult(wrapped, WrapResult{Width: width, Text: wrapped}), nil
}

func (r *Runner) handleLines(args Args, cfg *config.Config) (result, error) {
	text, err := r.readInput(CmdLines.String(), args)
	if err != nil {
		return result{}, err
	}

	width := r.wrapWidth(args, cfg)
	lines := strutil.WrapToLines(&text, width)
	r.logger.Printf("LINES | width=%d count=%d", width, len(lines))

	printed := lines
	if args.Number {
		printed = numberLines(lines)
	}
	glue := "\n"
	out := strutil.NullToEmpty(strutil.Implode(&glue, printed))

	return textResult(out, LinesResult{Width: width, Count: len(lines), Lines: lines}), nil
}

// numberLines prefixes each line with its 1-based number, right-aligned to
// the widest number.
func numberLines(lines []string) []string {
	digits := len(strconv.Itoa(len(lines)))
	numbered := make([]string, len(lines))
	for i, line := range lines {
		n := strconv.Itoa(i + 1)
		numbered[i] = *strutil.PadLeft(&n, digits) + "  " + line
	}
	return numbered
}

func (r *Runner) handleJoin(args Args, cfg *config.Config) (result, error) {
	pieces, err := r.readLines(args)
	if err != nil {
		return result{}, err
	}
	if pieces == nil {
		return result{}, NewValidationErrorWithExample("pieces", "", "nothing to join",
			`textkit join --glue ", " a b c`)
	}

	glue := nullutil.Coalesce(args.Glue, cfg.Join.Glue)
	joined := strutil.Implode(glue, pieces)
	r.logger.Printf("JOIN | pieces=%d glue=%q", len(pieces), strutil.NullToEmpty(glue))

	text := strutil.NullToEmpty(joined)
	return textResult(text, JoinResult{Glue: strutil.NullToEmpty(glue), Pieces: pieces, Text: text}), nil
}

func (r *Runner) handlePad(args Args, cfg *config.Config, left bool) (result, error) {
	cmd, side := CmdPadRight, "right"
	if left {
		cmd, side = CmdPadLeft, "left"
	}

	text, err := r.readInput(cmd.String(), args)
	if err != nil {
		return result{}, err
	}

	char, err := padChar(args, cfg)
	if err != nil {
		return result{}, err
	}
	length := nullutil.ValueOr(args.Length, cfg.Pad.Length)

	var padded *string
	if left {
		padded = strutil.PadLeftWith(&text, char, length)
	} else {
		padded = strutil.PadRightWith(&text, char, length)
	}
	out := strutil.NullToEmpty(padded)
	r.logger.Printf("PAD | side=%s char=%q length=%d added=%d", side, char, length,
		utf8.RuneCountInString(out)-utf8.RuneCountInString(text))

	return textResult(out, PadResult{Side: side, Char: string(char), Length: length, Text: out}), nil
}

// padChar resolves the pad character from --char or the config.
func padChar(args Args, cfg *config.Config) (rune, error) {
	if args.Char == nil {
		return cfg.PadRune()
	}
	c := *args.Char
	if utf8.RuneCountInString(c) != 1 {
		return 0, NewValidationErrorWithExample("char", c, "must be exactly one character", "--char '-'")
	}
	r, _ := utf8.DecodeRuneInString(c)
	return r, nil
}

func (r *Runner) handleCoalesce(args Args) (result, error) {
	pieces, err := r.readLines(args)
	if err != nil {
		return result{}, err
	}

	candidates := make([]*string, len(pieces))
	for i := range pieces {
		if pieces[i] != "" {
			candidates[i] = &pieces[i]
		}
	}

	value := nullutil.Coalesce(candidates...)
	index := -1
	for i, c := range candidates {
		if c != nil && c == value {
			index = i
			break
		}
	}
	r.logger.Printf("COALESCE | candidates=%d index=%d", len(candidates), index)

	data := CoalesceResult{Value: value, Index: index}
	if value == nil {
		return result{Data: data}, nil
	}
	return result{Text: value, Data: data}, nil
}
