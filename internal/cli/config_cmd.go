// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config and version commands for textkit.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Display the effective configuration as TOML
//   path                Show the configuration file path
//   init                Write a default configuration file
//
// Flags:
//   --force             Overwrite an existing file on init
//   --config PATH       Use PATH instead of ~/.textkit/config.toml

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jeranaias/textkit/internal/config"
)

// ConfigPathResult is the JSON payload of config path and config init.
type ConfigPathResult struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Written bool   `json:"written,omitempty"`
}

// VersionResult is the JSON payload of the version command.
type VersionResult struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func (r *Runner) handleConfig(args Args, cfg *config.Config) (result, error) {
	switch args.Subcommand {
	case "", "show":
		data, err := cfg.EncodeTOML()
		if err != nil {
			return result{}, NewCommandError("config", "show", "failed to render config", err)
		}
		return textResult(strings.TrimSuffix(string(data), "\n"), cfg), nil

	case "path":
		path, err := configPath(args)
		if err != nil {
			return result{}, err
		}
		_, statErr := os.Stat(path)
		return textResult(path, ConfigPathResult{Path: path, Exists: statErr == nil}), nil

	case "init":
		return r.configInit(args)

	default:
		return result{}, NewValidationErrorWithExample("subcommand", args.Subcommand,
			"must be one of: show, path, init", "textkit config init --force")
	}
}

func (r *Runner) configInit(args Args) (result, error) {
	path, err := configPath(args)
	if err != nil {
		return result{}, err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && !args.Force {
		return result{}, NewCommandError("config", "init", "file already exists (use --force to overwrite)",
			fmt.Errorf("%s: %w", path, os.ErrExist))
	}
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return result{}, NewCommandError("config", "init", "cannot inspect config file", statErr)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return result{}, NewCommandError("config", "init", "cannot write config file", err)
	}
	r.logger.Printf("CONFIG_WRITTEN | path=%s overwrite=%t", path, exists)

	return textResult("Wrote default configuration to "+path,
		ConfigPathResult{Path: path, Exists: true, Written: true}), nil
}

// configPath returns --config or the default TOML location.
func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	return path, nil
}

func handleVersion() result {
	info := VersionResult{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	text := fmt.Sprintf("textkit %s (commit %s, built %s, %s %s)",
		info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
	return textResult(text, info)
}
