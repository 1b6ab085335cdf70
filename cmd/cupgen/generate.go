// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/albertocavalcante/cupgen/build"
	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/config"
	"github.com/albertocavalcante/cupgen/internal/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateOptions holds the flags that do not map onto a config key.
type generateOptions struct {
	projectDir      string
	configFile      string
	verbose         bool
	quiet           bool
	dryRun          bool
	printSourceRoot bool
}

// Flags mapping onto config keys. Only flags set on the command line
// override the lower layers.
var (
	stringOptions = []struct {
		name, usage string
		field       func(*config.Layer) **string
	}{
		{"cup-definition", "CUP grammar file or directory (default " + config.DefaultGrammar + ")", func(l *config.Layer) **string { return &l.CupDefinition }},
		{"output", "generated sources root (default " + config.DefaultOutputDir + ")", func(l *config.Layer) **string { return &l.OutputDirectory }},
		{"package", "parser package, overrides the grammar's package declaration", func(l *config.Layer) **string { return &l.PackageName }},
		{"class-name", `parser class name (default "parser", "" reads the grammar's class declaration)`, func(l *config.Layer) **string { return &l.ClassName }},
		{"symbols", `symbol class name (default "sym", "" for none)`, func(l *config.Layer) **string { return &l.SymbolsName }},
		{"type-args", "generic type arguments of the parser class", func(l *config.Layer) **string { return &l.TypeArgs }},
		{"extension", "grammar file extension in directory mode (default .cup)", func(l *config.Layer) **string { return &l.Extension }},
		{"tool", "grammar compiler to run (default " + config.DefaultTool + ")", func(l *config.Layer) **string { return &l.Tool }},
		{"cup-jar", "path to the CUP jar for the java-cup tool", func(l *config.Layer) **string { return &l.CupJar }},
		{"java", `java executable for the java-cup tool (default "java")`, func(l *config.Layer) **string { return &l.Java }},
	}

	intOptions = []struct {
		name, usage string
		field       func(*config.Layer) **int
	}{
		{"stale-millis", "tolerated age of the grammar over its parser, in milliseconds", func(l *config.Layer) **int { return &l.StaleMillis }},
		{"expect", "number of conflicts to accept", func(l *config.Layer) **int { return &l.ExpectedConflicts }},
	}

	boolOptions = []struct {
		name, usage string
		field       func(*config.Layer) **bool
	}{
		{"interface", "generate the symbol class as an interface (default true)", func(l *config.Layer) **bool { return &l.SymbolsInterface }},
		{"dump-grammar", "print the grammar", func(l *config.Layer) **bool { return &l.DumpGrammar }},
		{"dump-states", "print the parse states", func(l *config.Layer) **bool { return &l.DumpStates }},
		{"dump-tables", "print the parse tables", func(l *config.Layer) **bool { return &l.DumpTables }},
		{"time", "print timing information", func(l *config.Layer) **bool { return &l.Time }},
		{"progress", "print progress messages", func(l *config.Layer) **bool { return &l.Progress }},
		{"no-scanner", "do not refer to java_cup.runtime.Scanner", func(l *config.Layer) **bool { return &l.NoScanner }},
		{"no-positions", "do not generate left/right position variables", func(l *config.Layer) **bool { return &l.NoPositions }},
		{"no-summary", "do not print the summary (default true)", func(l *config.Layer) **bool { return &l.NoSummary }},
		{"no-warn", "suppress warnings", func(l *config.Layer) **bool { return &l.NoWarn }},
		{"compact-red", "compact the tables by defaulting to the most frequent reduce", func(l *config.Layer) **bool { return &l.CompactRed }},
		{"nonterms", "put non terminals in the symbol class", func(l *config.Layer) **bool { return &l.NontermsToSymbols }},
		{"locations", "generate location handles", func(l *config.Layer) **bool { return &l.Locations }},
		{"xml-actions", "generate XML actions", func(l *config.Layer) **bool { return &l.XMLActions }},
		{"generic-labels", "use generic labels for symbol values", func(l *config.Layer) **bool { return &l.GenericLabels }},
		{"case-sensitive-extension", "match the grammar extension case sensitively", func(l *config.Layer) **bool { return &l.CaseSensitiveExtension }},
	}
)

func newGenerateCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate parsers for grammars that changed",
		Example: `  # Generate src/main/cup/parser.cup into target/generated-sources/cup
  cupgen generate

  # Every grammar in a directory, reading package and class from each file
  cupgen generate --cup-definition src/main/cup --class-name ""

  # Show the compiler invocations without running it
  cupgen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := overridesFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return generate(cmd, opts, overrides, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.projectDir, "project-dir", "C", "", "project directory relative paths resolve against (default current directory)")
	f.StringVar(&opts.configFile, "config", "", "configuration file (default <project-dir>/"+config.FileName+")")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug notices")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print warnings and errors only")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the compiler arguments instead of running it")
	f.BoolVar(&opts.printSourceRoot, "print-source-root", false, "print the generated sources root when done")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	for _, o := range stringOptions {
		f.String(o.name, "", o.usage)
	}
	for _, o := range intOptions {
		f.Int(o.name, 0, o.usage)
	}
	for _, o := range boolOptions {
		f.Bool(o.name, false, o.usage)
	}
	return cmd
}

// overridesFromFlags returns a layer holding the config flags that were set.
func overridesFromFlags(f *pflag.FlagSet) (config.Layer, error) {
	var l config.Layer
	for _, o := range stringOptions {
		if !f.Changed(o.name) {
			continue
		}
		v, err := f.GetString(o.name)
		if err != nil {
			return config.Layer{}, err
		}
		*o.field(&l) = &v
	}
	for _, o := range intOptions {
		if !f.Changed(o.name) {
			continue
		}
		v, err := f.GetInt(o.name)
		if err != nil {
			return config.Layer{}, err
		}
		*o.field(&l) = &v
	}
	for _, o := range boolOptions {
		if !f.Changed(o.name) {
			continue
		}
		v, err := f.GetBool(o.name)
		if err != nil {
			return config.Layer{}, err
		}
		*o.field(&l) = &v
	}
	return l, nil
}

func generate(cmd *cobra.Command, opts generateOptions, overrides config.Layer, stdout, stderr io.Writer) error {
	settings, err := config.Load(config.Options{
		ProjectDir: opts.projectDir,
		File:       opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	verbosity := logx.Normal
	switch {
	case opts.verbose:
		verbosity = logx.Verbose
	case opts.quiet:
		verbosity = logx.Quiet
	}
	log := logx.New(stderr, verbosity)
	if settings.File != "" {
		log.Debugf("Using configuration %s", settings.File)
	}

	registerTools(settings.Java, settings.CupJar, stdout)
	name := settings.Tool
	if opts.dryRun {
		name = "print"
	}
	tool, ok := generator.Get(name)
	if !ok {
		return fmt.Errorf("unknown tool %q (available: %v)", name, generator.List())
	}
	if err := settings.RequireTool(name); err != nil {
		return err
	}

	out, err := build.Run(cmd.Context(), settings.Generator, tool, log)
	if err != nil {
		return err
	}
	log.Debugf("%d generated, %d up to date", len(out.Generated), len(out.Skipped))

	if opts.printSourceRoot {
		if _, err := fmt.Fprintln(stdout, out.SourceRoot); err != nil {
			return err
		}
	}
	return nil
}
