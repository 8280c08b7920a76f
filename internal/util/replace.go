// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ReplaceFile writes a command result or config file to path. Readers see
// either the previous content or all of data.
//
// A file that already exists keeps its permission bits; newPerm applies only
// when path is created. Missing parent directories are created. path must
// not be a directory.
func ReplaceFile(path string, data []byte, newPerm fs.FileMode) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	perm, err := replaceMode(target, newPerm)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".textkit-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	if err := writeAndClose(tmp, data, perm); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", target, err)
	}
	return nil
}

// replaceMode returns the mode the replaced file should get.
func replaceMode(target string, newPerm fs.FileMode) (fs.FileMode, error) {
	info, err := os.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newPerm, nil
	case err != nil:
		return 0, fmt.Errorf("inspect %s: %w", target, err)
	case info.IsDir():
		return 0, fmt.Errorf("%s is a directory", target)
	default:
		return info.Mode().Perm(), nil
	}
}

// writeAndClose fills f, flushes it to disk and closes it. f is closed on
// every path; Windows cannot rename an open file.
func writeAndClose(f *os.File, data []byte, perm fs.FileMode) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(f.Name(), perm)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", f.Name(), err)
	}
	return nil
}
