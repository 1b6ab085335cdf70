// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logx configures the leveled logger used by the command.
package logx

import (
	"io"

	logging "gopkg.in/op/go-logging.v1"
)

// Module is the go-logging module name of the generator.
const Module = "cupgen"

// Verbosity selects the lowest level that is printed.
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
)

var format = logging.MustStringFormatter(`%{message}`)

var verboseFormat = logging.MustStringFormatter(`%{level:.4s} %{message}`)

// New returns the module logger writing to w at the given verbosity.
func New(w io.Writer, v Verbosity) *logging.Logger {
	f := format
	if v == Verbose {
		f = verboseFormat
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), f)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level(v), Module)

	log := logging.MustGetLogger(Module)
	log.SetBackend(leveled)
	return log
}

func level(v Verbosity) logging.Level {
	switch v {
	case Quiet:
		return logging.WARNING
	case Verbose:
		return logging.DEBUG
	default:
		return logging.INFO
	}
}
