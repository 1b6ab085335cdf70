// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for cupgen.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// WorkPlaceholder stands for the scenario's project directory in expected
// output.
const WorkPlaceholder = "$WORK"

// BaseTime is the modification time given to every materialized file.
// Files listed in a "Touch:" line get BaseTime plus one hour.
var BaseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from "Flags: ..." line in the description.
	Flags []string

	// Touch lists project files made newer than the rest.
	Touch []string

	// Files maps project-relative paths to content.
	Files map[string][]byte

	// Want maps relative paths (e.g., "args") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - Project files (grammars, cupgen.yaml, pre-existing outputs)
//   - One or more "want/<name>" files with expected output
//
// The description may contain a "Flags: flag1, flag2" line with command-line
// flags and a "Touch: path1, path2" line naming files to make newer.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Files:       make(map[string][]byte),
		Want:        make(map[string][]byte),
	}

	c.Flags = directive(c.Description, "Flags:")
	c.Touch = directive(c.Description, "Touch:")

	for _, f := range ar.Files {
		if strings.HasPrefix(f.Name, "want/") {
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
			continue
		}
		c.Files[f.Name] = f.Data
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	for _, p := range c.Touch {
		if _, ok := c.Files[p]; !ok {
			return nil, fmt.Errorf("touched file %q is not in the archive", p)
		}
	}

	return c, nil
}

// directive extracts the comma separated values of a "Key: ..." line.
func directive(description, key string) []string {
	var values []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, key) {
			continue
		}
		for _, v := range strings.Split(strings.TrimPrefix(line, key), ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		break
	}
	return values
}

// Materialize writes the case's project files into dir with deterministic
// modification times.
func (c *Case) Materialize(t *testing.T, dir string) {
	t.Helper()

	touched := make(map[string]bool, len(c.Touch))
	for _, p := range c.Touch {
		touched[p] = true
	}

	for name, data := range c.Files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %q: %v", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write %q: %v", name, err)
		}
		mtime := BaseTime
		if touched[name] {
			mtime = mtime.Add(time.Hour)
		}
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes %q: %v", name, err)
		}
	}
}

// GenerateFunc runs the scenario in the materialized project dir.
// It returns a map of output name to content.
type GenerateFunc func(dir string, flags []string) (map[string][]byte, error)

// Run materializes the case in a temporary directory, executes generate,
// and compares its output against the expected output, with the directory
// replaced by WorkPlaceholder.
func (c *Case) Run(t *testing.T, generate GenerateFunc) map[string][]byte {
	t.Helper()

	dir := t.TempDir()
	c.Materialize(t, dir)

	got, err := generate(dir, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for name, content := range got {
		got[name] = []byte(strings.ReplaceAll(string(content), dir, WorkPlaceholder))
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}
		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("output %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
	return got
}

// normalizeContent normalizes content for comparison:
// - Uses forward slashes so goldens are portable
// - Trims trailing whitespace from each line
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(filepath.ToSlash(string(content)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive replaces the archive's want/* files with got.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}

	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// LoadTestCases loads all txtar test cases from a directory, together with
// the archive file they came from.
func LoadTestCases(t *testing.T, dir string) ([]*Case, map[string]string) {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	paths := make(map[string]string, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
		paths[name] = file
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases, paths
}

// Update rewrites the archive at path with got as the new goldens.
func Update(t *testing.T, path string, got map[string][]byte) {
	t.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parse %q: %v", path, err)
	}
	if err := os.WriteFile(path, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}
