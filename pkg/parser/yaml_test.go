package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/nanocc/nanocc/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// testSpec is one case from testdata/parse.yaml
type testSpec struct {
	Name     string   `yaml:"name"`
	Input    string   `yaml:"input"`
	Toplevel []string `yaml:"toplevel,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

type testFile struct {
	Tests []testSpec `yaml:"tests"`
}

func TestParseYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/parse.yaml")
	if err != nil {
		t.Fatalf("failed to read parse.yaml: %v", err)
	}

	var tf testFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		t.Fatalf("failed to parse parse.yaml: %v", err)
	}

	for _, tc := range tf.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			prog, err := Parse(lexer.Tokenize(tc.Input))

			if tc.Error != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", tc.Error)
				}
				if !strings.Contains(err.Error(), tc.Error) {
					t.Fatalf("expected error containing %q, got %q", tc.Error, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if len(prog) != len(tc.Toplevel) {
				t.Fatalf("got %d top-level nodes, want %d", len(prog), len(tc.Toplevel))
			}
			for i, want := range tc.Toplevel {
				if got := prog[i].Kind.String(); got != want {
					t.Errorf("top-level node %d: got %s, want %s", i, got, want)
				}
			}
		})
	}
}
