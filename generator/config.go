// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultExtension is the grammar file extension used for directory scans.
	DefaultExtension = ".cup"

	// JavaExtension is the extension of every generated source file.
	JavaExtension = ".java"
)

// Config contains generation configuration.
//
// A Config is built once before a run and passed by value; nothing in this
// module mutates it afterwards. Pointer fields distinguish "not configured"
// (nil) from an explicit empty value.
type Config struct {
	// Grammar is the grammar file or directory to process.
	Grammar string

	// Namespace is the explicit package of the generated classes.
	// An empty string selects the root package.
	Namespace *string

	// TypeName is the explicit parser class name.
	TypeName *string

	// SymbolsName is the symbol constant class name.
	SymbolsName *string

	// OutputDir is the absolute root directory for generated sources.
	OutputDir string

	// StaleMillis is the modification time tolerance, in milliseconds,
	// within which a generated file is still considered up to date.
	StaleMillis int

	// Extension filters directory entries (default ".cup").
	Extension string

	// CaseSensitiveExtension disables case folding of Extension.
	CaseSensitiveExtension bool

	// Flags are passed through to the grammar compiler.
	Flags Flags
}

// Flags holds the grammar compiler feature switches.
type Flags struct {
	// SymbolsInterface emits symbol constants as an interface.
	SymbolsInterface bool

	// DumpGrammar dumps the symbols and grammar.
	DumpGrammar bool

	// DumpStates dumps the parse state machine.
	DumpStates bool

	// DumpTables dumps the parse tables.
	DumpTables bool

	// Time prints a time usage summary.
	Time bool

	// NontermsToSymbols puts non-terminals in the symbol class.
	NontermsToSymbols bool

	// CompactReduce defaults tables to the most frequent reduce.
	CompactReduce bool

	// NoWarn suppresses warnings about useless productions.
	NoWarn bool

	// NoSummary suppresses the parse state summary.
	NoSummary bool

	// Progress prints progress messages.
	Progress bool

	// NoPositions stops propagating left/right token positions.
	NoPositions bool

	// NoScanner drops the reference to the runtime Scanner.
	NoScanner bool

	// Locations generates xleft/xright location handles.
	Locations bool

	// XMLActions generates XMLElement actions for labeled symbols.
	XMLActions bool

	// GenericLabels produces the full parse tree as XMLElements.
	GenericLabels bool

	// ExpectedConflicts is the number of conflicts allowed (0 = none).
	ExpectedConflicts int

	// TypeArgs are the type arguments of the parser class.
	TypeArgs *string
}

// DefaultFlags returns the compiler switches enabled when nothing is
// configured.
func DefaultFlags() Flags {
	return Flags{
		SymbolsInterface: true,
		NoSummary:        true,
	}
}

// String returns a pointer to s, for the optional Config fields.
func String(s string) *string {
	return &s
}

// Validate reports the first required field that is missing.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Grammar) == "" {
		return &Error{
			Kind:    KindConfigurationMissing,
			Message: "grammar definition is empty, set cupDefinition to a .cup file or directory",
		}
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return &Error{Kind: KindConfigurationMissing, Message: "output directory is not defined"}
	}
	if !filepath.IsAbs(c.OutputDir) {
		return &Error{
			Kind:    KindConfigurationMissing,
			Path:    c.OutputDir,
			Message: "output directory must be absolute",
		}
	}
	if c.TypeName != nil && *c.TypeName == "" {
		return &Error{Kind: KindConfigurationMissing, Message: "class name is empty"}
	}
	return nil
}

// GrammarExtension returns the extension used to select grammar files.
func (c Config) GrammarExtension() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}

// MatchesExtension reports whether name carries the grammar extension,
// honouring CaseSensitiveExtension.
func (c Config) MatchesExtension(name string) bool {
	ext := c.GrammarExtension()
	if c.CaseSensitiveExtension {
		return strings.HasSuffix(name, ext)
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}
