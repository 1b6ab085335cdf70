// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package locate computes where a grammar's generated parser is written.
package locate

import (
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/grammar"
)

// Identity is the resolved output of one grammar source.
type Identity struct {
	// Namespace is the Java package; empty means the root package.
	Namespace string

	// TypeName is the parser class name, never empty.
	TypeName string

	// Path is the absolute path of the generated parser file.
	Path string
}

// Dir returns the directory the parser file is written to, falling back to
// root when Path has no parent.
func (id Identity) Dir(root string) string {
	dir := filepath.Dir(id.Path)
	if dir == "." || dir == "" {
		return root
	}
	return dir
}

// Resolve combines explicit configuration with the declarations found in
// source. Configuration always wins.
func Resolve(cfg generator.Config, source string, meta grammar.Metadata) (Identity, error) {
	namespace, ok := pick(cfg.Namespace, meta.Namespace)
	if !ok {
		return Identity{}, &generator.Error{
			Kind:    generator.KindMetadataUnresolvable,
			Path:    source,
			Message: "package name is not defined",
		}
	}
	typeName, ok := pick(cfg.TypeName, meta.TypeName)
	if !ok || typeName == "" {
		return Identity{}, &generator.Error{
			Kind:    generator.KindMetadataUnresolvable,
			Path:    source,
			Message: "class name is not defined",
		}
	}

	return Identity{
		Namespace: namespace,
		TypeName:  typeName,
		Path:      OutputPath(cfg.OutputDir, namespace, typeName),
	}, nil
}

// OutputPath returns root/<namespace as directories>/<name>.java.
func OutputPath(root, namespace, name string) string {
	return filepath.Join(root, RelativePath(namespace, name))
}

// RelativePath returns <namespace as directories>/<name>.java.
func RelativePath(namespace, name string) string {
	file := name + generator.JavaExtension
	if namespace == "" {
		return file
	}
	dir := strings.ReplaceAll(namespace, ".", string(filepath.Separator))
	return dir + string(filepath.Separator) + file
}

func pick(explicit *string, found grammar.Value) (string, bool) {
	if explicit != nil {
		return *explicit, true
	}
	return found.Text, found.Found
}
