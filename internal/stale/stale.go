// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package stale decides whether a generated file must be rebuilt.
package stale

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ErrOutput marks a failure to inspect the generated file, as opposed to the
// source.
var ErrOutput = errors.New("inspect output")

// NeedsRegeneration reports whether output must be regenerated from source.
//
// A missing output always needs regeneration. Otherwise the output is up to
// date when mtime(source) - mtime(output) <= toleranceMillis, which includes
// every output newer than its source.
func NeedsRegeneration(source, output string, toleranceMillis int) (bool, error) {
	src, err := os.Stat(source)
	if err != nil {
		return false, err
	}
	out, err := os.Stat(output)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return Compare(src.ModTime(), out.ModTime(), toleranceMillis), nil
}

// Compare applies the tolerance rule to two modification times.
func Compare(source, output time.Time, toleranceMillis int) bool {
	diff := source.UnixMilli() - output.UnixMilli()
	return diff > int64(toleranceMillis)
}
