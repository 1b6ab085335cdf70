// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config builds the generation configuration from defaults, a
// project file, the environment and command-line overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/cupgen/generator"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the project configuration file looked up in the project dir.
	FileName = "cupgen.yaml"

	// DefaultGrammar is the grammar used when none is configured.
	DefaultGrammar = "src/main/cup/parser.cup"

	// DefaultOutputDir is the generated sources root, relative to the project.
	DefaultOutputDir = "target/generated-sources/cup"

	// DefaultTool is the grammar compiler adapter name.
	DefaultTool = "java-cup"
)

// Layer is one source of settings. Nil fields leave the lower layers alone.
// The yaml keys follow the option names of the Maven CUP plugin.
type Layer struct {
	CupDefinition          *string `yaml:"cupDefinition"`
	OutputDirectory        *string `yaml:"outputDirectory"`
	PackageName            *string `yaml:"packageName"`
	ClassName              *string `yaml:"className"`
	SymbolsName            *string `yaml:"symbolsName"`
	StaleMillis            *int    `yaml:"staleMillis"`
	Extension              *string `yaml:"extension"`
	CaseSensitiveExtension *bool   `yaml:"caseSensitiveExtension"`

	SymbolsInterface  *bool   `yaml:"symbolsInterface"`
	DumpGrammar       *bool   `yaml:"dumpGrammar"`
	DumpStates        *bool   `yaml:"dumpStates"`
	DumpTables        *bool   `yaml:"dumpTables"`
	Time              *bool   `yaml:"time"`
	Progress          *bool   `yaml:"progress"`
	NoScanner         *bool   `yaml:"noScanner"`
	NoPositions       *bool   `yaml:"noPositions"`
	NoSummary         *bool   `yaml:"noSummary"`
	NoWarn            *bool   `yaml:"noWarn"`
	CompactRed        *bool   `yaml:"compactRed"`
	NontermsToSymbols *bool   `yaml:"nontermsToSymbols"`
	ExpectedConflicts *int    `yaml:"expectedConflicts"`
	TypeArgs          *string `yaml:"typeArgs"`
	Locations         *bool   `yaml:"locations"`
	XMLActions        *bool   `yaml:"xmlActions"`
	GenericLabels     *bool   `yaml:"genericLabels"`

	Tool   *string `yaml:"tool"`
	CupJar *string `yaml:"cupJar"`
	Java   *string `yaml:"java"`
}

// Options controls Load.
type Options struct {
	// ProjectDir anchors relative paths. Defaults to the working directory.
	ProjectDir string

	// File is an explicit configuration file. When empty, FileName in
	// ProjectDir is used if it exists.
	File string

	// LookupEnv reads process environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Overrides are applied last, typically from command-line flags.
	Overrides Layer
}

// Settings is the outcome of Load.
type Settings struct {
	// Generator is the validated generation configuration.
	Generator generator.Config

	// Tool names the registered grammar compiler to run.
	Tool string

	// CupJar is the path to the CUP jar for the java-cup tool.
	CupJar string

	// Java is the java executable for the java-cup tool.
	Java string

	// ProjectDir is the absolute project directory.
	ProjectDir string

	// File is the configuration file that was read, if any.
	File string
}

// Defaults returns the bottom layer.
func Defaults() Layer {
	flags := generator.DefaultFlags()
	return Layer{
		CupDefinition:    ptr(DefaultGrammar),
		OutputDirectory:  ptr(DefaultOutputDir),
		ClassName:        ptr("parser"),
		SymbolsName:      ptr("sym"),
		StaleMillis:      ptr(0),
		SymbolsInterface: ptr(flags.SymbolsInterface),
		NoSummary:        ptr(flags.NoSummary),
		Tool:             ptr(DefaultTool),
		Java:             ptr("java"),
	}
}

// Load merges defaults, the project file, the environment and opts.Overrides
// and validates the result.
func Load(opts Options) (*Settings, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		projectDir = wd
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	merged := Defaults()

	file, fileLayer, err := readFile(projectDir, opts.File)
	if err != nil {
		return nil, err
	}
	merged.Merge(fileLayer)

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	envLayer, err := FromEnv(projectDir, lookup)
	if err != nil {
		return nil, err
	}
	merged.Merge(envLayer)
	merged.Merge(opts.Overrides)

	s := &Settings{
		Generator:  merged.Config(projectDir),
		Tool:       deref(merged.Tool),
		CupJar:     deref(merged.CupJar),
		Java:       deref(merged.Java),
		ProjectDir: projectDir,
		File:       file,
	}
	if s.CupJar != "" {
		s.CupJar = resolve(projectDir, s.CupJar)
	}
	if err := s.Generator.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// RequireTool reports a ConfigurationMissing error when the settings lack
// what the named tool needs to run.
func (s *Settings) RequireTool(name string) error {
	if name == DefaultTool && s.CupJar == "" {
		return &generator.Error{
			Kind:    generator.KindConfigurationMissing,
			Message: "CUP jar is not configured, set cupJar, " + EnvCupJar + " or --cup-jar",
		}
	}
	return nil
}

// readFile decodes the configuration file, strictly.
func readFile(projectDir, explicit string) (string, Layer, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(projectDir, FileName)
	} else {
		path = resolve(projectDir, path)
	}

	data, err := os.ReadFile(path)
	if explicit == "" && errors.Is(err, fs.ErrNotExist) {
		return "", Layer{}, nil
	}
	if err != nil {
		return "", Layer{}, fmt.Errorf("read config: %w", err)
	}

	layer, err := Parse(data)
	if err != nil {
		return "", Layer{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return path, layer, nil
}

// Parse decodes a YAML layer. Unknown keys are rejected.
func Parse(data []byte) (Layer, error) {
	var l Layer
	if len(bytes.TrimSpace(data)) == 0 {
		return l, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// Merge copies every non-nil field of o into l.
func (l *Layer) Merge(o Layer) {
	set(&l.CupDefinition, o.CupDefinition)
	set(&l.OutputDirectory, o.OutputDirectory)
	set(&l.PackageName, o.PackageName)
	set(&l.ClassName, o.ClassName)
	set(&l.SymbolsName, o.SymbolsName)
	set(&l.StaleMillis, o.StaleMillis)
	set(&l.Extension, o.Extension)
	set(&l.CaseSensitiveExtension, o.CaseSensitiveExtension)
	set(&l.SymbolsInterface, o.SymbolsInterface)
	set(&l.DumpGrammar, o.DumpGrammar)
	set(&l.DumpStates, o.DumpStates)
	set(&l.DumpTables, o.DumpTables)
	set(&l.Time, o.Time)
	set(&l.Progress, o.Progress)
	set(&l.NoScanner, o.NoScanner)
	set(&l.NoPositions, o.NoPositions)
	set(&l.NoSummary, o.NoSummary)
	set(&l.NoWarn, o.NoWarn)
	set(&l.CompactRed, o.CompactRed)
	set(&l.NontermsToSymbols, o.NontermsToSymbols)
	set(&l.ExpectedConflicts, o.ExpectedConflicts)
	set(&l.TypeArgs, o.TypeArgs)
	set(&l.Locations, o.Locations)
	set(&l.XMLActions, o.XMLActions)
	set(&l.GenericLabels, o.GenericLabels)
	set(&l.Tool, o.Tool)
	set(&l.CupJar, o.CupJar)
	set(&l.Java, o.Java)
}

// Config converts the layer into a generator.Config, resolving relative
// paths against projectDir. Empty names mean "not configured".
func (l Layer) Config(projectDir string) generator.Config {
	return generator.Config{
		Grammar:                resolve(projectDir, deref(l.CupDefinition)),
		Namespace:              optional(l.PackageName),
		TypeName:               optional(l.ClassName),
		SymbolsName:            optional(l.SymbolsName),
		OutputDir:              resolve(projectDir, deref(l.OutputDirectory)),
		StaleMillis:            deref(l.StaleMillis),
		Extension:              deref(l.Extension),
		CaseSensitiveExtension: deref(l.CaseSensitiveExtension),
		Flags: generator.Flags{
			SymbolsInterface:  deref(l.SymbolsInterface),
			DumpGrammar:       deref(l.DumpGrammar),
			DumpStates:        deref(l.DumpStates),
			DumpTables:        deref(l.DumpTables),
			Time:              deref(l.Time),
			NontermsToSymbols: deref(l.NontermsToSymbols),
			CompactReduce:     deref(l.CompactRed),
			NoWarn:            deref(l.NoWarn),
			NoSummary:         deref(l.NoSummary),
			Progress:          deref(l.Progress),
			NoPositions:       deref(l.NoPositions),
			NoScanner:         deref(l.NoScanner),
			Locations:         deref(l.Locations),
			XMLActions:        deref(l.XMLActions),
			GenericLabels:     deref(l.GenericLabels),
			ExpectedConflicts: deref(l.ExpectedConflicts),
			TypeArgs:          optional(l.TypeArgs),
		},
	}
}

func resolve(projectDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}

func optional(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func set[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}
