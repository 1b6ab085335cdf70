// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables understood by FromEnv.
const (
	EnvCupDefinition   = "CUPGEN_CUP_DEFINITION"
	EnvOutputDirectory = "CUPGEN_OUTPUT_DIRECTORY"
	EnvPackageName     = "CUPGEN_PACKAGE_NAME"
	EnvClassName       = "CUPGEN_CLASS_NAME"
	EnvSymbolsName     = "CUPGEN_SYMBOLS_NAME"
	EnvStaleMillis     = "CUPGEN_STALE_MILLIS"
	EnvTool            = "CUPGEN_TOOL"
	EnvCupJar          = "CUPGEN_CUP_JAR"
	EnvJava            = "CUPGEN_JAVA"

	// EnvLastModGranularity is the historical name of the stale tolerance.
	EnvLastModGranularity = "LAST_MOD_GRANULARITY_MS"
)

// DotEnvFile is read from the project directory when present.
const DotEnvFile = ".env"

// FromEnv builds a layer from the environment. Variables in the process
// environment take precedence over the project's .env file.
func FromEnv(projectDir string, lookup func(string) (string, bool)) (Layer, error) {
	dotenv, err := godotenv.Read(filepath.Join(projectDir, DotEnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Layer{}, fmt.Errorf("read %s: %w", DotEnvFile, err)
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	str := func(key string) *string {
		if v, ok := get(key); ok {
			return &v
		}
		return nil
	}

	l := Layer{
		CupDefinition:   str(EnvCupDefinition),
		OutputDirectory: str(EnvOutputDirectory),
		PackageName:     str(EnvPackageName),
		ClassName:       str(EnvClassName),
		SymbolsName:     str(EnvSymbolsName),
		Tool:            str(EnvTool),
		CupJar:          str(EnvCupJar),
		Java:            str(EnvJava),
	}

	for _, key := range []string{EnvLastModGranularity, EnvStaleMillis} {
		v, ok := get(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Layer{}, fmt.Errorf("parse %s: %w", key, err)
		}
		l.StaleMillis = &n
	}
	return l, nil
}
