// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package build

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/albertocavalcante/cupgen/generator"
)

// Sources resolves the configured grammar path into the grammar files to
// process. A directory yields its immediate regular files carrying the
// grammar extension, in name order; subdirectories are not entered.
func Sources(cfg generator.Config) ([]string, error) {
	path, err := filepath.Abs(cfg.Grammar)
	if err != nil {
		return nil, &generator.Error{Kind: generator.KindInputNotFound, Path: cfg.Grammar, Message: "input file does not exist", Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &generator.Error{Kind: generator.KindInputNotFound, Path: path, Message: "input file does not exist", Err: err}
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, &generator.Error{Kind: generator.KindInputNotFound, Path: path, Message: "input is not a regular file"}
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &generator.Error{Kind: generator.KindDirectoryEnumeration, Path: path, Message: "could not process directory", Err: err}
	}

	var sources []string
	for _, e := range entries {
		if !cfg.MatchesExtension(e.Name()) {
			continue
		}
		file := filepath.Join(path, e.Name())
		// Stat follows symlinks, so linked grammar files are accepted and
		// dangling links are skipped like any other non-file entry.
		fi, err := os.Stat(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &generator.Error{Kind: generator.KindDirectoryEnumeration, Path: file, Message: "could not process directory", Err: err}
		}
		if fi.Mode().IsRegular() {
			sources = append(sources, file)
		}
	}
	return sources, nil
}
