// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// project creates a project directory with the given files.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout, "cupgen dev (commit: unknown") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestTools(t *testing.T) {
	stdout, _, err := runCLI(t, "tools")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		names = append(names, strings.Fields(line)[0])
	}
	if diff := cmp.Diff([]string{"java-cup", "print"}, names); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_DryRun(t *testing.T) {
	dir := project(t, map[string]string{
		"src/main/cup/parser.cup": "package calc;\nclass Calc;\n",
	})

	stdout, stderr, err := runCLI(t, "generate", "-C", dir, "--dry-run", "--class-name", "", "--symbols", "", "--interface=false", "--expect", "2", "--print-source-root")
	if err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr)
	}

	root := filepath.Join(dir, "target", "generated-sources", "cup")
	want := strings.Join([]string{
		"-package", "calc",
		"-parser", "Calc",
		"-nosummary",
		"-expect", "2",
		"-destdir", filepath.Join(root, "calc"),
		filepath.Join(dir, "src", "main", "cup", "parser.cup"),
	}, "\n") + "\n\n" + root + "\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("  generated "+filepath.Join(root, "calc", "Calc.java")+"\n", stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_FlagsOverrideConfigFile(t *testing.T) {
	dir := project(t, map[string]string{
		"cupgen.yaml":     "cupDefinition: grammar.cup\npackageName: from.file\n",
		"grammar.cup":     "class P;\n",
		"other/other.cup": "class Q;\n",
	})

	stdout, _, err := runCLI(t, "generate", "-C", dir, "--dry-run", "-q", "--package", "from.flag")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "-package\nfrom.flag\n") {
		t.Errorf("flag did not override the file:\n%s", stdout)
	}
	if !strings.Contains(stdout, filepath.Join(dir, "grammar.cup")) {
		t.Errorf("file setting lost:\n%s", stdout)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		args  []string
		want  string
	}{
		{
			name: "missing grammar",
			args: []string{"--dry-run"},
			want: "input file does not exist",
		},
		{
			name:  "missing class",
			files: map[string]string{"src/main/cup/parser.cup": "package calc;\n"},
			args:  []string{"--dry-run", "--class-name", ""},
			want:  "class name is not defined",
		},
		{
			name:  "unknown tool",
			files: map[string]string{"src/main/cup/parser.cup": "package calc;\n"},
			args:  []string{"--tool", "bison"},
			want:  `unknown tool "bison"`,
		},
		{
			name:  "java-cup without jar",
			files: map[string]string{"src/main/cup/parser.cup": "package calc;\n"},
			want:  "CUP jar is not configured",
		},
		{
			name:  "unknown config key",
			files: map[string]string{"cupgen.yaml": "grammar: x.cup\n"},
			args:  []string{"--dry-run"},
			want:  "field grammar not found",
		},
		{
			name: "verbose and quiet",
			args: []string{"-v", "-q"},
			want: "none of the others can be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := project(t, tt.files)
			args := append([]string{"generate", "-C", dir}, tt.args...)
			_, _, err := runCLI(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
