// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package tools

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/albertocavalcante/cupgen/generator"
)

// Print writes each invocation to W, one argument per line followed by a
// blank line, instead of compiling anything.
type Print struct {
	W io.Writer
}

// NewPrint creates a Print tool writing to w.
func NewPrint(w io.Writer) *Print {
	return &Print{W: w}
}

// Metadata returns information about this tool.
func (p *Print) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "print",
		Version:     "1.0.0",
		Description: "Print the compiler arguments without running it",
	}
}

// Run writes args.
func (p *Print) Run(_ context.Context, args []string) error {
	_, err := fmt.Fprintf(p.W, "%s\n\n", strings.Join(args, "\n"))
	return err
}

// Register adds the built-in tools to the generator registry.
func Register(java, jar string, w io.Writer) {
	generator.Register(NewJavaCup(java, jar))
	generator.Register(NewPrint(w))
}
