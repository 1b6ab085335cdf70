// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cupargs converts generation configuration into CUP command-line
// arguments and back.
//
// Build emits arguments in a fixed order so that logs and tests can compare
// invocations byte for byte:
//
//	-package NS        resolved package, only when non-empty
//	-parser NAME       resolved class name
//	-symbols NAME      when a symbol class is configured
//	-interface ... -genericlabels
//	                   one token per enabled switch, in the order of switches
//	-expect N          only when N > 0
//	-typearg ARGS      when type arguments are configured
//	-destdir DIR       directory of the generated parser
//	SOURCE             absolute grammar path, always last
package cupargs

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/locate"
)

// Flags accepted by CUP.
const (
	FlagPackage = "-package"
	FlagParser  = "-parser"
	FlagSymbols = "-symbols"
	FlagExpect  = "-expect"
	FlagTypeArg = "-typearg"
	FlagDestDir = "-destdir"
)

// switchFlag maps a boolean option to its CUP token.
type switchFlag struct {
	token string
	get   func(*generator.Flags) *bool
}

// switches lists the boolean options in emission order.
var switches = []switchFlag{
	{"-interface", func(f *generator.Flags) *bool { return &f.SymbolsInterface }},
	{"-dump_grammar", func(f *generator.Flags) *bool { return &f.DumpGrammar }},
	{"-dump_states", func(f *generator.Flags) *bool { return &f.DumpStates }},
	{"-dump_tables", func(f *generator.Flags) *bool { return &f.DumpTables }},
	{"-time", func(f *generator.Flags) *bool { return &f.Time }},
	{"-nonterms", func(f *generator.Flags) *bool { return &f.NontermsToSymbols }},
	{"-compact_red", func(f *generator.Flags) *bool { return &f.CompactReduce }},
	{"-nowarn", func(f *generator.Flags) *bool { return &f.NoWarn }},
	{"-nosummary", func(f *generator.Flags) *bool { return &f.NoSummary }},
	{"-progress", func(f *generator.Flags) *bool { return &f.Progress }},
	{"-nopositions", func(f *generator.Flags) *bool { return &f.NoPositions }},
	{"-noscanner", func(f *generator.Flags) *bool { return &f.NoScanner }},
	{"-locations", func(f *generator.Flags) *bool { return &f.Locations }},
	{"-xmlactions", func(f *generator.Flags) *bool { return &f.XMLActions }},
	{"-genericlabels", func(f *generator.Flags) *bool { return &f.GenericLabels }},
}

// Build returns the CUP argument vector for one grammar source.
func Build(cfg generator.Config, id locate.Identity, source string) []string {
	var args []string

	if id.Namespace != "" {
		args = append(args, FlagPackage, id.Namespace)
	}
	args = append(args, FlagParser, id.TypeName)
	if cfg.SymbolsName != nil {
		args = append(args, FlagSymbols, *cfg.SymbolsName)
	}

	flags := cfg.Flags
	for _, s := range switches {
		if *s.get(&flags) {
			args = append(args, s.token)
		}
	}

	if flags.ExpectedConflicts > 0 {
		args = append(args, FlagExpect, strconv.Itoa(flags.ExpectedConflicts))
	}
	if flags.TypeArgs != nil {
		args = append(args, FlagTypeArg, *flags.TypeArgs)
	}

	args = append(args, FlagDestDir, absolute(id.Dir(cfg.OutputDir)))
	args = append(args, absolute(source))
	return args
}

// Invocation is a decoded CUP argument vector.
type Invocation struct {
	Package string
	Parser  string
	Symbols string
	DestDir string
	Source  string
	Flags   generator.Flags
}

// Parse decodes args produced by Build. Unknown flags and missing values are
// errors; the last non-flag argument is the grammar source.
func Parse(args []string) (Invocation, error) {
	var inv Invocation
	byToken := make(map[string]switchFlag, len(switches))
	for _, s := range switches {
		byToken[s.token] = s
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if s, ok := byToken[arg]; ok {
			*s.get(&inv.Flags) = true
			continue
		}

		switch arg {
		case FlagPackage, FlagParser, FlagSymbols, FlagExpect, FlagTypeArg, FlagDestDir:
			if i+1 >= len(args) {
				return Invocation{}, fmt.Errorf("flag %s needs a value", arg)
			}
			i++
			if err := inv.set(arg, args[i]); err != nil {
				return Invocation{}, err
			}
		default:
			if i != len(args)-1 {
				return Invocation{}, fmt.Errorf("unexpected argument %q", arg)
			}
			inv.Source = arg
		}
	}

	if inv.Source == "" {
		return Invocation{}, fmt.Errorf("missing grammar source argument")
	}
	return inv, nil
}

func (inv *Invocation) set(flag, value string) error {
	switch flag {
	case FlagPackage:
		inv.Package = value
	case FlagParser:
		inv.Parser = value
	case FlagSymbols:
		inv.Symbols = value
	case FlagExpect:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		inv.Flags.ExpectedConflicts = n
	case FlagTypeArg:
		inv.Flags.TypeArgs = &value
	case FlagDestDir:
		inv.DestDir = value
	}
	return nil
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
