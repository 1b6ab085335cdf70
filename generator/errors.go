// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "fmt"

// Kind classifies a generation failure.
type Kind string

const (
	// KindConfigurationMissing indicates a required option is absent.
	KindConfigurationMissing Kind = "configuration-missing"
	// KindInputNotFound indicates the grammar path does not exist or is
	// not a regular file where one was expected.
	KindInputNotFound Kind = "input-not-found"
	// KindMetadataUnresolvable indicates the package or class name could not
	// be determined from configuration or the grammar source.
	KindMetadataUnresolvable Kind = "metadata-unresolvable"
	// KindDirectoryEnumeration indicates a grammar directory could not be listed.
	KindDirectoryEnumeration Kind = "directory-enumeration"
	// KindGeneration indicates the grammar compiler failed.
	KindGeneration Kind = "generation-failure"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrConfigurationMissing = &Error{Kind: KindConfigurationMissing}
	ErrInputNotFound        = &Error{Kind: KindInputNotFound}
	ErrMissingMetadata      = &Error{Kind: KindMetadataUnresolvable}
	ErrDirectoryEnumeration = &Error{Kind: KindDirectoryEnumeration}
	ErrGeneration           = &Error{Kind: KindGeneration}
)

// Error is the single failure type reported by a generation run.
type Error struct {
	Kind    Kind
	Path    string // offending file or directory, if any
	Message string
	Err     error
}

// Error returns the message followed by the path and cause, when present.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
