// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command cupgen generates Java parsers from CUP grammars, skipping grammars
// whose parser is already up to date.
//
// Usage:
//
//	cupgen generate [flags]
//	cupgen tools
//	cupgen version
//
// Settings come from defaults, cupgen.yaml in the project directory, the
// CUPGEN_* environment (and a .env file), then flags, each layer overriding
// the previous one. Run "cupgen generate --help" for the flag list.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/tools"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "cupgen",
		Short: "Incremental parser generation for CUP grammars",
		Long: `cupgen - CUP Parser Generator Driver

Runs the CUP parser generator for every grammar whose generated parser is
missing or older than the grammar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newGenerateCmd(stdout, stderr),
		newToolsCmd(stdout),
		newVersionCmd(stdout),
	)
	return root
}

func newToolsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available grammar compilers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			registerTools("java", "", stdout)
			for _, t := range generator.All() {
				m := t.Metadata()
				if _, err := fmt.Fprintf(stdout, "%-10s %-8s %s\n", m.Name, m.Version, m.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(stdout, "cupgen %s (commit: %s, built: %s)\n", version, commit, date)
			return err
		},
	}
}

// registerTools fills the tool registry. The print tool writes to stdout.
func registerTools(java, jar string, stdout io.Writer) {
	generator.Reset()
	tools.Register(java, jar, stdout)
}
