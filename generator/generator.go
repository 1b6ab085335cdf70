// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the configuration, tool contract and error kinds
// shared by the grammar generation pipeline.
package generator

import "context"

// Tool is the interface that every grammar compiler adapter must implement.
//
// Run is called in-process with the same argument vector a command-line
// invocation of the compiler would receive. A non-nil error marks the
// generation as failed.
type Tool interface {
	// Metadata returns information about this tool.
	Metadata() Metadata

	// Run invokes the compiler with args.
	Run(ctx context.Context, args []string) error
}

// Metadata describes a tool.
type Metadata struct {
	// Name is the short identifier (e.g., "java-cup", "print").
	Name string

	// Version is the tool adapter version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// ToolFunc adapts a function to the Tool interface. Its metadata name is
// "func".
type ToolFunc func(ctx context.Context, args []string) error

// Metadata returns the fixed metadata of a function tool.
func (f ToolFunc) Metadata() Metadata {
	return Metadata{Name: "func", Description: "In-process function"}
}

// Run calls f.
func (f ToolFunc) Run(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// Logger receives the notices of a generation run. *logging.Logger from
// gopkg.in/op/go-logging.v1 satisfies it.
type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Debugf(string, ...any) {}
