// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package tools provides the grammar compiler adapters.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/albertocavalcante/cupgen/generator"
)

// JavaCup runs the CUP jar with a Java runtime.
type JavaCup struct {
	// Java is the java executable (default "java").
	Java string

	// Jar is the path to the CUP jar.
	Jar string
}

// NewJavaCup creates a JavaCup tool.
func NewJavaCup(java, jar string) *JavaCup {
	return &JavaCup{Java: java, Jar: jar}
}

// Metadata returns information about this tool.
func (j *JavaCup) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "java-cup",
		Version:     "1.0.0",
		Description: "Run java -jar java-cup.jar with the generated arguments",
		URL:         "https://www2.cs.tum.edu/projects/cup/",
	}
}

// Run invokes CUP with args. The compiler's stderr is attached to the error.
func (j *JavaCup) Run(ctx context.Context, args []string) error {
	if j.Jar == "" {
		return errors.New("CUP jar is not configured")
	}
	java := j.Java
	if java == "" {
		java = "java"
	}

	argv := append([]string{"-jar", j.Jar}, args...)
	cmd := exec.CommandContext(ctx, java, argv...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", java, err)
		}
		return fmt.Errorf("%s: %w: %s", java, err, msg)
	}
	return nil
}
