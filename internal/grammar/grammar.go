// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package grammar recovers the package and class declarations of a CUP
// grammar without parsing it.
//
// The scan is line oriented: a line whose trimmed text starts with the
// keyword and contains a ';' yields a value. Keywords inside comments or
// string literals match as well; callers accept that. The captured window is
// computed on the trimmed line but sliced from the untrimmed one, so
// indentation before the keyword shifts it. Trimming removes ASCII control
// characters and spaces only.
package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// PackageKeyword introduces the package (namespace) declaration.
	PackageKeyword = "package"

	// ClassKeyword introduces the parser class declaration.
	ClassKeyword = "class"
)

// Value is an optional declaration value.
type Value struct {
	Text  string
	Found bool
}

// Metadata holds the declarations found in a grammar source.
type Metadata struct {
	Namespace Value
	TypeName  Value
}

// Extract scans r for both declarations. The first match of each keyword
// wins; scanning stops once both are found.
func Extract(r io.Reader) (Metadata, error) {
	var m Metadata
	err := scanLines(r, func(line string) bool {
		if !m.Namespace.Found {
			m.Namespace = match(line, PackageKeyword)
		}
		if !m.TypeName.Found {
			m.TypeName = match(line, ClassKeyword)
		}
		return m.Namespace.Found && m.TypeName.Found
	})
	return m, err
}

// Scan returns the first value declared with keyword in r.
func Scan(r io.Reader, keyword string) (Value, error) {
	var v Value
	err := scanLines(r, func(line string) bool {
		v = match(line, keyword)
		return v.Found
	})
	return v, err
}

// ExtractFile runs Extract on the file at path.
func ExtractFile(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, err
	}
	defer f.Close()

	m, err := Extract(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}

// scanLines calls fn for each line until fn returns true or input ends.
// Lines have no length limit; a trailing "\r" is dropped.
func scanLines(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 || err == nil {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if fn(line) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// isSpace reports the characters trimmed around a line: ASCII control
// characters and the space, but no other Unicode white space.
func isSpace(r rune) bool {
	return r <= ' '
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// match applies the keyword + terminator rule to a single line.
func match(line, keyword string) Value {
	trimmed := trim(line)
	if !strings.HasPrefix(trimmed, keyword) {
		return Value{}
	}
	end := strings.IndexByte(trimmed, ';')
	if end <= 0 || end < len(keyword) {
		return Value{}
	}
	// len(trimmed) <= len(line), so end is in range for line too.
	return Value{Text: trim(line[len(keyword):end]), Found: true}
}
