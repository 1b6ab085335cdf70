// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cupargs

import (
	"path/filepath"
	"testing"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/locate"
	"github.com/google/go-cmp/cmp"
)

var (
	root   = filepath.FromSlash("/out")
	source = filepath.FromSlash("/src/calc.cup")
)

func identity(namespace, name string) locate.Identity {
	return locate.Identity{
		Namespace: namespace,
		TypeName:  name,
		Path:      locate.OutputPath(root, namespace, name),
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		cfg  generator.Config
		id   locate.Identity
		want []string
	}{
		{
			name: "minimal",
			cfg:  generator.Config{OutputDir: root},
			id:   identity("", "parser"),
			want: []string{"-parser", "parser", "-destdir", root, source},
		},
		{
			name: "defaults",
			cfg: generator.Config{
				OutputDir:   root,
				SymbolsName: generator.String("sym"),
				Flags:       generator.DefaultFlags(),
			},
			id: identity("calc", "parser"),
			want: []string{
				"-package", "calc",
				"-parser", "parser",
				"-symbols", "sym",
				"-interface",
				"-nosummary",
				"-destdir", filepath.Join(root, "calc"),
				source,
			},
		},
		{
			name: "every option in canonical order",
			cfg: generator.Config{
				OutputDir:   root,
				SymbolsName: generator.String("Tokens"),
				Flags: generator.Flags{
					SymbolsInterface:  true,
					DumpGrammar:       true,
					DumpStates:        true,
					DumpTables:        true,
					Time:              true,
					NontermsToSymbols: true,
					CompactReduce:     true,
					NoWarn:            true,
					NoSummary:         true,
					Progress:          true,
					NoPositions:       true,
					NoScanner:         true,
					Locations:         true,
					XMLActions:        true,
					GenericLabels:     true,
					ExpectedConflicts: 3,
					TypeArgs:          generator.String("T extends Node"),
				},
			},
			id: identity("com.example", "MyParser"),
			want: []string{
				"-package", "com.example",
				"-parser", "MyParser",
				"-symbols", "Tokens",
				"-interface",
				"-dump_grammar",
				"-dump_states",
				"-dump_tables",
				"-time",
				"-nonterms",
				"-compact_red",
				"-nowarn",
				"-nosummary",
				"-progress",
				"-nopositions",
				"-noscanner",
				"-locations",
				"-xmlactions",
				"-genericlabels",
				"-expect", "3",
				"-typearg", "T extends Node",
				"-destdir", filepath.Join(root, "com", "example"),
				source,
			},
		},
		{
			name: "zero and negative conflict counts are omitted",
			cfg: generator.Config{
				OutputDir: root,
				Flags:     generator.Flags{ExpectedConflicts: -2},
			},
			id:   identity("", "P"),
			want: []string{"-parser", "P", "-destdir", root, source},
		},
		{
			name: "empty type arguments are still passed",
			cfg: generator.Config{
				OutputDir: root,
				Flags:     generator.Flags{TypeArgs: generator.String("")},
			},
			id:   identity("", "P"),
			want: []string{"-parser", "P", "-typearg", "", "-destdir", root, source},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.cfg, tt.id, source)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := generator.Config{OutputDir: root, SymbolsName: generator.String("sym"), Flags: generator.DefaultFlags()}
	id := identity("a.b", "P")

	first := Build(cfg, id, source)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Build(cfg, id, source)); diff != "" {
			t.Fatalf("Build not stable (-first +again):\n%s", diff)
		}
	}
}

// TestRoundTrip decodes every combination of switches and checks that the
// decoded flags equal the configured ones.
func TestRoundTrip(t *testing.T) {
	for mask := 0; mask < 1<<len(switches); mask++ {
		var flags generator.Flags
		for i, s := range switches {
			if mask&(1<<i) != 0 {
				*s.get(&flags) = true
			}
		}
		flags.ExpectedConflicts = mask % 4
		if mask%3 == 0 {
			flags.TypeArgs = generator.String("E")
		}

		cfg := generator.Config{OutputDir: root, Flags: flags}
		id := identity("x.y", "P")
		args := Build(cfg, id, source)

		inv, err := Parse(args)
		if err != nil {
			t.Fatalf("mask %b: Parse(%q): %v", mask, args, err)
		}
		if diff := cmp.Diff(flags, inv.Flags); diff != "" {
			t.Fatalf("mask %b: flags mismatch (-want +got):\n%s", mask, diff)
		}
		if inv.Package != "x.y" || inv.Parser != "P" || inv.Source != source {
			t.Fatalf("mask %b: decoded %+v", mask, inv)
		}
		if want := filepath.Join(root, "x", "y"); inv.DestDir != want {
			t.Fatalf("mask %b: DestDir = %q, want %q", mask, inv.DestDir, want)
		}
	}
}

// TestBuild_OnePairPerValue checks that each configured value option appears
// exactly once and no switch token appears when disabled.
func TestBuild_OnePairPerValue(t *testing.T) {
	cfg := generator.Config{
		OutputDir:   root,
		SymbolsName: generator.String("sym"),
		Flags:       generator.Flags{ExpectedConflicts: 1, TypeArgs: generator.String("T")},
	}
	args := Build(cfg, identity("p", "P"), source)

	counts := make(map[string]int)
	for _, a := range args {
		counts[a]++
	}
	for _, flag := range []string{FlagPackage, FlagParser, FlagSymbols, FlagExpect, FlagTypeArg, FlagDestDir} {
		if counts[flag] != 1 {
			t.Errorf("flag %s appears %d times, want 1", flag, counts[flag])
		}
	}
	for _, s := range switches {
		if counts[s.token] != 0 {
			t.Errorf("disabled switch %s present", s.token)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "empty", args: nil},
		{name: "flag without value", args: []string{"-parser"}},
		{name: "bad expect", args: []string{"-expect", "many", "/src/a.cup"}},
		{name: "positional not last", args: []string{"/src/a.cup", "-parser", "P"}},
		{name: "only flags", args: []string{"-interface", "-parser", "P"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.args)
			}
		})
	}
}
