// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Output summarizes a generation run.
type Output struct {
	// SourceRoot is the output root, to be added to the host's compile
	// source roots.
	SourceRoot string

	// Generated lists the sources the tool was invoked for, in order.
	Generated []File

	// Skipped lists the sources whose output was up to date.
	Skipped []File
}

// File pairs a grammar source with its generated files.
type File struct {
	// Source is the absolute grammar path.
	Source string

	// Path is the generated parser file.
	Path string

	// SymbolsPath is the symbol class file, empty if no symbol name is set.
	SymbolsPath string

	// Args is the tool argument vector, nil for skipped files.
	Args []string
}

// NewOutput creates a new Output rooted at sourceRoot.
func NewOutput(sourceRoot string) *Output {
	return &Output{SourceRoot: sourceRoot}
}

// AddGenerated records a generated file.
func (o *Output) AddGenerated(f File) {
	o.Generated = append(o.Generated, f)
}

// AddSkipped records an up-to-date file.
func (o *Output) AddSkipped(f File) {
	o.Skipped = append(o.Skipped, f)
}
