package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nanocc/nanocc/pkg/ast"
	"github.com/nanocc/nanocc/pkg/lexer"
	"github.com/nanocc/nanocc/pkg/parser"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Dump flags for inspecting the front end's intermediate results
var (
	dumpTokens bool
	dumpAST    bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// dumpFlagNames lists the flags that also accept the compiler-style
// single-dash spelling (-dump-ast)
var dumpFlagNames = []string{"dump-tokens", "dump-ast"}

// normalizeFlags converts single-dash dump flags like -dump-ast to
// --dump-ast for pflag compatibility
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range dumpFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nanocc [flags] file.c",
		Short: "nanocc parses a small C subset and reports syntax errors",
		Long: `nanocc is the syntactic front end of a small C-subset compiler.
It tokenizes and parses one source file, building a typed AST.
By default it only reports success or the first syntax error;
the dump flags print the intermediate results.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST")

	return rootCmd
}

func runFile(filename string, out, errOut io.Writer) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "nanocc: %v\n", err)
		return err
	}

	toks := lexer.Tokenize(string(src))
	if dumpTokens {
		for _, t := range toks {
			fmt.Fprintf(out, "%d:%d\t%s\t%q\n", t.Line, t.Column, t.Type, t.Literal)
		}
	}

	prog, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintf(errOut, "nanocc: %s: %v\n", filename, err)
		return err
	}

	if dumpAST {
		ast.NewPrinter(out).PrintProgram(prog)
	}
	return nil
}
