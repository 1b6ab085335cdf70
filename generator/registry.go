// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Tool)
)

// Register adds a tool to the registry.
func Register(t Tool) {
	mu.Lock()
	defer mu.Unlock()
	meta := t.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("tool %q already registered", meta.Name))
	}
	registry[meta.Name] = t
}

// Get returns a tool by name.
func Get(name string) (Tool, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	return t, ok
}

// List returns all registered tool names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered tools, sorted by name.
func All() []Tool {
	mu.RLock()
	defer mu.RUnlock()
	tools := make([]Tool, 0, len(registry))
	for _, t := range registry {
		tools = append(tools, t)
	}
	slices.SortFunc(tools, func(a, b Tool) int {
		return cmp.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return tools
}

// Reset clears the registry.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Tool)
}
