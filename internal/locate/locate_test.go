// SPDX-License-Identifier: MIT

package locate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/albertocavalcante/cupgen/generator"
	"github.com/albertocavalcante/cupgen/internal/grammar"
	"github.com/google/go-cmp/cmp"
)

func found(s string) grammar.Value {
	return grammar.Value{Text: s, Found: true}
}

func TestResolve(t *testing.T) {
	root := filepath.FromSlash("/out")

	tests := []struct {
		name    string
		cfg     generator.Config
		meta    grammar.Metadata
		want    Identity
		wantErr bool
	}{
		{
			name: "declarations from source",
			cfg:  generator.Config{OutputDir: root},
			meta: grammar.Metadata{Namespace: found("com.example"), TypeName: found("MyParser")},
			want: Identity{
				Namespace: "com.example",
				TypeName:  "MyParser",
				Path:      filepath.Join(root, "com", "example", "MyParser.java"),
			},
		},
		{
			name: "explicit configuration wins over source",
			cfg: generator.Config{
				OutputDir: root,
				Namespace: generator.String("org.calc"),
				TypeName:  generator.String("CalcParser"),
			},
			meta: grammar.Metadata{Namespace: found("com.example"), TypeName: found("MyParser")},
			want: Identity{
				Namespace: "org.calc",
				TypeName:  "CalcParser",
				Path:      filepath.Join(root, "org", "calc", "CalcParser.java"),
			},
		},
		{
			name: "explicit root package overrides source",
			cfg:  generator.Config{OutputDir: root, Namespace: generator.String("")},
			meta: grammar.Metadata{Namespace: found("com.example"), TypeName: found("P")},
			want: Identity{Namespace: "", TypeName: "P", Path: filepath.Join(root, "P.java")},
		},
		{
			name: "empty package declaration is the root package",
			cfg:  generator.Config{OutputDir: root, TypeName: generator.String("parser")},
			meta: grammar.Metadata{Namespace: found("")},
			want: Identity{Namespace: "", TypeName: "parser", Path: filepath.Join(root, "parser.java")},
		},
		{
			name:    "no class name anywhere",
			cfg:     generator.Config{OutputDir: root},
			meta:    grammar.Metadata{Namespace: found("com.example")},
			wantErr: true,
		},
		{
			name:    "empty class declaration",
			cfg:     generator.Config{OutputDir: root},
			meta:    grammar.Metadata{Namespace: found("a"), TypeName: found("")},
			wantErr: true,
		},
		{
			name:    "no package anywhere",
			cfg:     generator.Config{OutputDir: root, TypeName: generator.String("parser")},
			meta:    grammar.Metadata{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.cfg, "/src/parser.cup", tt.meta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, generator.ErrMissingMetadata) {
					t.Errorf("Resolve() error = %v, want kind %s", err, generator.KindMetadataUnresolvable)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelativePath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		namespace string
		name      string
		want      string
	}{
		{namespace: "", name: "parser", want: "parser.java"},
		{namespace: "calc", name: "sym", want: "calc" + sep + "sym.java"},
		{namespace: "com.example.lang", name: "Parser", want: "com" + sep + "example" + sep + "lang" + sep + "Parser.java"},
	}

	for _, tt := range tests {
		if got := RelativePath(tt.namespace, tt.name); got != tt.want {
			t.Errorf("RelativePath(%q, %q) = %q, want %q", tt.namespace, tt.name, got, tt.want)
		}
	}
}

func TestIdentity_Dir(t *testing.T) {
	root := filepath.FromSlash("/out")
	id := Identity{Path: filepath.Join(root, "a", "P.java")}
	if got, want := id.Dir(root), filepath.Join(root, "a"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}

	bare := Identity{Path: "P.java"}
	if got := bare.Dir(root); got != root {
		t.Errorf("Dir() = %q, want %q", got, root)
	}
}
