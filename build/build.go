// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package build drives incremental parser generation for CUP grammars.
//
// A run resolves the grammar source set, then for each source in order it
// recovers the package and class declarations, computes the output file,
// skips the source when the output is up to date, and otherwise invokes the
// grammar compiler. The first failure aborts the whole run.
package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/cupargs"
	"github.com/albertocavalcante/cupgen/internal/grammar"
	"github.com/albertocavalcante/cupgen/internal/locate"
	"github.com/albertocavalcante/cupgen/internal/stale"
)

// Run generates parsers for every grammar source selected by cfg.
//
// ctx is passed to the tool only; sources are processed sequentially and
// the run itself is not interrupted between them.
func Run(ctx context.Context, cfg generator.Config, tool generator.Tool, log generator.Logger) (*generator.Output, error) {
	if log == nil {
		log = generator.NopLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, &generator.Error{Kind: generator.KindConfigurationMissing, Message: "no grammar compiler configured"}
	}

	sources, err := Sources(cfg)
	if err != nil {
		return nil, err
	}
	if isDir(cfg.Grammar) {
		log.Debugf("Processing directory: %s", absolute(cfg.Grammar))
	}

	out := generator.NewOutput(cfg.OutputDir)
	for _, source := range sources {
		if err := process(ctx, cfg, tool, log, source, out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// process runs the per-source pipeline and records the result in out.
func process(ctx context.Context, cfg generator.Config, tool generator.Tool, log generator.Logger, source string, out *generator.Output) error {
	log.Debugf("Processing CUP file %s", filepath.Base(source))

	meta, err := readMetadata(cfg, source)
	if err != nil {
		return err
	}

	id, err := locate.Resolve(cfg, source, meta)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(id.Dir(cfg.OutputDir), 0o755); err != nil {
		return &generator.Error{Kind: generator.KindGeneration, Path: source, Message: "create output directory", Err: err}
	}

	file := generator.File{Source: source, Path: id.Path}
	if cfg.SymbolsName != nil {
		file.SymbolsPath = locate.OutputPath(cfg.OutputDir, id.Namespace, *cfg.SymbolsName)
	}

	needed, err := stale.NeedsRegeneration(source, id.Path, cfg.StaleMillis)
	if errors.Is(err, stale.ErrOutput) {
		return &generator.Error{Kind: generator.KindGeneration, Path: id.Path, Message: "could not check generated file", Err: err}
	}
	if err != nil {
		return &generator.Error{Kind: generator.KindInputNotFound, Path: source, Message: "input file does not exist", Err: err}
	}
	if !needed {
		log.Infof("  %s is up to date.", filepath.Base(id.Path))
		log.Debugf("StaleMillis = %dms", cfg.StaleMillis)
		out.AddSkipped(file)
		return nil
	}

	file.Args = cupargs.Build(cfg, id, source)
	if err := tool.Run(ctx, file.Args); err != nil {
		return &generator.Error{Kind: generator.KindGeneration, Path: source, Message: "could not process CUP file", Err: err}
	}

	log.Infof("  generated %s", id.Path)
	if file.SymbolsPath != "" {
		log.Infof("  generated %s", file.SymbolsPath)
	}
	out.AddGenerated(file)
	return nil
}

// readMetadata scans source only for the declarations cfg leaves open.
func readMetadata(cfg generator.Config, source string) (grammar.Metadata, error) {
	if cfg.Namespace != nil && cfg.TypeName != nil {
		return grammar.Metadata{}, nil
	}
	meta, err := grammar.ExtractFile(source)
	if err != nil {
		return grammar.Metadata{}, &generator.Error{
			Kind:    generator.KindInputNotFound,
			Path:    source,
			Message: "could not read package and class name from CUP file",
			Err:     err,
		}
	}
	return meta, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
