// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutput(t *testing.T) {
	out := NewOutput("/out")
	out.AddGenerated(File{Source: "/src/a.cup", Path: "/out/calc/parser.java", Args: []string{"/src/a.cup"}})
	out.AddSkipped(File{Source: "/src/b.cup", Path: "/out/calc/parser.java"})
	out.AddGenerated(File{Source: "/src/c.cup", Path: "/out/P.java", SymbolsPath: "/out/sym.java"})

	want := &Output{
		SourceRoot: "/out",
		Generated: []File{
			{Source: "/src/a.cup", Path: "/out/calc/parser.java", Args: []string{"/src/a.cup"}},
			{Source: "/src/c.cup", Path: "/out/P.java", SymbolsPath: "/out/sym.java"},
		},
		Skipped: []File{
			{Source: "/src/b.cup", Path: "/out/calc/parser.java"},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}
